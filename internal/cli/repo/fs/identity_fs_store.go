// Package fs stores the CLI's asserted identity on disk: a small JSON file
// with the chosen member's id and name.
package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Identity is the locally persisted "who am I" of the CLI, the file-based
// counterpart of the web client's localStorage user_id.
type Identity struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

// IdentityFSStore reads and writes the identity file.
type IdentityFSStore struct {
	Path string
}

// Save writes the identity with owner-only permissions.
func (s IdentityFSStore) Save(id Identity) error {
	if id.UserID <= 0 || id.Name == "" {
		return errors.New("empty identity")
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	b, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, b, 0o600)
}

// Load reads the stored identity.
func (s IdentityFSStore) Load() (Identity, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return Identity{}, err
	}
	var id Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return Identity{}, err
	}
	if id.UserID <= 0 {
		return Identity{}, errors.New("no stored identity")
	}
	return id, nil
}

// Clear removes the identity file. Missing file is not an error.
func (s IdentityFSStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
