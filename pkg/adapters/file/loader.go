package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/pkg/domain"
)

// Loader implements ports.MapLoader for a map stored on disk.
// Files ending in .yaml or .yml use the YAML form; anything else the text form.
type Loader struct {
	path   string
	parser *compiler.Parser
}

// NewLoader creates a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:   path,
		parser: compiler.NewParser(),
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and parses the file.
func (l *Loader) Load(ctx context.Context) (*domain.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		m   *domain.Map
		err error
	)
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".yaml", ".yml":
		data, readErr := os.ReadFile(l.path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read map: %w", readErr)
		}
		m, err = l.parser.ParseYAML(data)
	default:
		f, openErr := os.Open(l.path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to read map: %w", openErr)
		}
		defer f.Close()
		m, err = l.parser.ParseReader(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	if m.Name == "" {
		m.Name = filepath.Base(l.path)
	}
	return m, nil
}
