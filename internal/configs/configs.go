/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures the service by reading operating system environment variables,
including the running environment, the session token signing secret, and the
snapshot storage backend (local file or S3-compatible object storage).
*/
package configs

import (
	"fmt"
	"os"
)

// Snapshot backend identifiers accepted in SNAPSHOT_BACKEND.
const (
	SnapshotBackendFile = "file"
	SnapshotBackendS3   = "s3"
)

// AppConfig contains all configuration parameters required for the service to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Settings
	Environment string

	// Security Settings
	JWTSecret string

	// Snapshot Storage Settings
	SnapshotBackend string
	SnapshotPath    string

	// S3 Storage Settings (required only when SnapshotBackend is "s3")
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides development defaults where safe and performs the necessary validation.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// --- Security Settings ---
	jwtSecret := os.Getenv("JWT_SECRET")
	if cfg.Environment == "development" {
		if jwtSecret == "" {
			jwtSecret = "your_default_insecure_secret_key_change_me"
		}
	} else {
		if jwtSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
	}
	cfg.JWTSecret = jwtSecret

	// --- Snapshot Storage Settings ---
	cfg.SnapshotBackend = os.Getenv("SNAPSHOT_BACKEND")
	if cfg.SnapshotBackend == "" {
		cfg.SnapshotBackend = SnapshotBackendFile
	}

	cfg.SnapshotPath = os.Getenv("SNAPSHOT_PATH")
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = "accounts.json"
	}

	switch cfg.SnapshotBackend {
	case SnapshotBackendFile:
		// Nothing further; SnapshotPath is a local filesystem path.

	case SnapshotBackendS3:
		// SnapshotPath doubles as the object key inside the bucket.
		cfg.S3BucketName = os.Getenv("S3_BUCKET_NAME")
		if cfg.S3BucketName == "" {
			return nil, fmt.Errorf("S3_BUCKET_NAME environment variable is required for the s3 snapshot backend")
		}

		cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
		if cfg.S3Endpoint == "" {
			return nil, fmt.Errorf("S3_ENDPOINT environment variable is required for the s3 snapshot backend")
		}

		cfg.S3AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
		if cfg.S3AccessKeyID == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY_ID environment variable is required for S3 authentication")
		}

		cfg.S3SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
		if cfg.S3SecretAccessKey == "" {
			return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY environment variable is required for S3 authentication")
		}

	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_BACKEND %q (expected %q or %q)", cfg.SnapshotBackend, SnapshotBackendFile, SnapshotBackendS3)
	}

	return cfg, nil
}
