// Package storage abstracts where uploaded images live. The service only
// needs "store bytes, get back a public URL"; object storage proper is an
// external collaborator behind this interface.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type Store interface {
	// Save writes the file and returns its public URL.
	Save(filename string, data []byte) (string, error)
}

// DiskStore keeps uploads on local disk, served under baseURL/uploads/.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

func (s *DiskStore) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.baseURL + "/uploads/" + filename, nil
}
