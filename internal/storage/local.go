package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

// Local writes images to a directory on disk. References are bare filenames
// of the form <unix-ms>-<original-name>, whitespace collapsed to underscores.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	// filepath.Base guards against path traversal in the client filename.
	base := whitespace.ReplaceAllString(filepath.Base(name), "_")
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)

	f, err := os.Create(filepath.Join(l.dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return filename, nil
}
