package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"kith/internal/app/account"
	"kith/internal/configs"
	"kith/internal/pkg/logx"
)

const snapshotContentType = "application/json"

// s3Store implements Store on top of an S3-compatible object store, keeping
// the snapshot as a single JSON object in the configured bucket.
type s3Store struct {
	bucket   string
	key      string
	s3Client *s3.Client
	uploader *manager.Uploader
}

// newS3Store initializes the S3 client using a custom configuration that
// supports S3-compatible endpoints.
func newS3Store(cfg *configs.AppConfig) (*s3Store, error) {
	sdkCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		logx.Error(err, "Failed to load AWS SDK config")
		return nil, errors.New("failed to initialize S3 snapshot store configuration")
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &s3Store{
		bucket:   cfg.S3BucketName,
		key:      cfg.SnapshotPath,
		s3Client: client,
		uploader: manager.NewUploader(client),
	}, nil
}

// Load fetches and decodes the snapshot object. A missing object yields (nil, nil).
func (s *s3Store) Load(ctx context.Context) ([]*account.Account, error) {
	resp, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			logx.Debug("No snapshot object present, starting empty", "bucket", s.bucket, "key", s.key)
			return nil, nil
		}
		logx.Error(err, "S3 snapshot fetch failed", "bucket", s.bucket, "key", s.key)
		return nil, errors.New("failed to fetch snapshot from S3")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logx.Error(err, "S3 snapshot read failed", "bucket", s.bucket, "key", s.key)
		return nil, errors.New("failed to read snapshot from S3")
	}

	return decodeAccounts(data)
}

// Save encodes the accounts and uploads them, replacing the snapshot object.
func (s *s3Store) Save(ctx context.Context, accounts []*account.Account) error {
	data, err := encodeAccounts(accounts)
	if err != nil {
		return err
	}

	contentType := snapshotContentType
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &s.key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		logx.Error(err, "S3 snapshot upload failed", "bucket", s.bucket, "key", s.key)
		return errors.New("failed to upload snapshot to S3")
	}

	return nil
}

// Delete removes the snapshot object. S3 DeleteObject is a no-op for absent keys.
func (s *s3Store) Delete(ctx context.Context) error {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
	})
	if err != nil {
		logx.Error(err, "S3 snapshot delete failed", "bucket", s.bucket, "key", s.key)
		return errors.New("failed to delete snapshot from S3")
	}

	return nil
}
