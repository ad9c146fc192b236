package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/opencontainers/go-digest"
)

// DefaultStoreDir is used by NewStore when no directory is given.
var DefaultStoreDir = filepath.Join(".wasteland", "reports")

// Store implements ports.ReportStore using the local filesystem.
// Each report is a JSON file named after the digest of its key, so any key
// is a valid file name.
type Store struct {
	BasePath string
}

// NewStore creates a Store rooted at basePath (DefaultStoreDir when empty).
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = DefaultStoreDir
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.BasePath, digest.FromString(key).Encoded()+".json")
}

// Save writes the report atomically: a synced temp file in the same
// directory is renamed over the destination.
func (s *Store) Save(ctx context.Context, key string, report *domain.Report) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure report directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := s.path(key)
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}

// Load reads a report, returning domain.ErrReportNotFound when absent.
func (s *Store) Load(ctx context.Context, key string) (*domain.Report, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// Delete removes the report file. Deleting a missing report is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete report file: %w", err)
	}
	return nil
}
