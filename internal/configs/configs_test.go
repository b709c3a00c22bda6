package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "JWT_SECRET", "SNAPSHOT_BACKEND", "SNAPSHOT_PATH",
		"S3_BUCKET_NAME", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, SnapshotBackendFile, cfg.SnapshotBackend)
	assert.Equal(t, "accounts.json", cfg.SnapshotPath)
}

func TestLoadConfigProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "real-secret", cfg.JWTSecret)
}

func TestLoadConfigS3BackendValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAPSHOT_BACKEND", "s3")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("S3_BUCKET_NAME", "kith-snapshots")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SnapshotBackendS3, cfg.SnapshotBackend)
	assert.Equal(t, "kith-snapshots", cfg.S3BucketName)
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAPSHOT_BACKEND", "postgres")

	_, err := LoadConfig()
	assert.Error(t, err)
}
