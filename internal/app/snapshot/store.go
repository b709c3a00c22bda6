/*
Package snapshot implements the persistence gateway: the durable snapshot of
the full account graph loaded at process start and saved at shutdown.

The snapshot is a JSON list of accounts with their complete nested state
(attributes, friends, pending requests, mailbox). Sessions are never
persisted. Two backends exist behind the Store interface: a local file and an
S3-compatible object store.
*/
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"kith/internal/app/account"
	"kith/internal/configs"
)

// Store defines the public interface for snapshot persistence.
type Store interface {
	// Load reads the snapshot and returns the decoded accounts. A missing
	// snapshot is not an error: Load returns (nil, nil).
	Load(ctx context.Context) ([]*account.Account, error)

	// Save serializes the given accounts, replacing any previous snapshot.
	Save(ctx context.Context, accounts []*account.Account) error

	// Delete removes the snapshot. Deleting an absent snapshot is not an error.
	Delete(ctx context.Context) error
}

// NewStore is the factory function for Store. It selects the concrete
// implementation based on the configured snapshot backend.
func NewStore(cfg *configs.AppConfig) (Store, error) {
	switch cfg.SnapshotBackend {
	case configs.SnapshotBackendFile:
		return NewFileStore(cfg.SnapshotPath), nil
	case configs.SnapshotBackendS3:
		return newS3Store(cfg)
	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %q", cfg.SnapshotBackend)
	}
}

// encodeAccounts serializes the account list into the snapshot wire shape.
func encodeAccounts(accounts []*account.Account) ([]byte, error) {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode account snapshot: %w", err)
	}
	return data, nil
}

// decodeAccounts parses the snapshot wire shape back into accounts.
func decodeAccounts(data []byte) ([]*account.Account, error) {
	var accounts []*account.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode account snapshot: %w", err)
	}
	return accounts, nil
}
