package snapshot

import (
	"context"
	"fmt"
	"os"

	"kith/internal/app/account"
	"kith/internal/pkg/logx"
)

// fileStore implements Store on top of a single local JSON file.
type fileStore struct {
	path string
}

// NewFileStore returns a Store persisting the snapshot at the given path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// Load reads and decodes the snapshot file. A missing file yields (nil, nil).
func (s *fileStore) Load(_ context.Context) ([]*account.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logx.Debug("No snapshot file present, starting empty", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", s.path, err)
	}

	return decodeAccounts(data)
}

// Save encodes the accounts and atomically replaces the snapshot file.
func (s *fileStore) Save(_ context.Context, accounts []*account.Account) error {
	data, err := encodeAccounts(accounts)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file %s: %w", s.path, err)
	}

	return nil
}

// Delete removes the snapshot file if present.
func (s *fileStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot file %s: %w", s.path, err)
	}
	return nil
}
