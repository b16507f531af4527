// Package tempspool stages uploaded files on local disk for the duration of
// one extraction. Files are short-lived; callers remove them when extraction
// finishes, success or not.
package tempspool

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Spool struct {
	basePath string
}

func New(basePath string) (*Spool, error) {
	if basePath == "" {
		basePath = "./data/uploads"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &Spool{basePath: basePath}, nil
}

// Save writes the upload to a uniquely named file keeping the original
// extension, so the extractor can dispatch on it.
func (s *Spool) Save(_ context.Context, filename string, data io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, err := os.CreateTemp(s.basePath, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create spool file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write spool file: %w", err)
	}
	return f.Name(), nil
}

func (s *Spool) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove spool file: %w", err)
	}
	return nil
}
