package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalArchiver stores images on the local filesystem, useful in development
// when no object store is configured.
type LocalArchiver struct {
	BaseDir string
}

// NewLocalArchiver constructs an archiver that writes to the provided
// directory. If baseDir is empty, os.TempDir() is used.
func NewLocalArchiver(baseDir string) (*LocalArchiver, error) {
	dir := baseDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local media dir: %w", err)
	}
	return &LocalArchiver{BaseDir: dir}, nil
}

// Archive writes the image to a temp file and returns its absolute path.
func (l *LocalArchiver) Archive(_ context.Context, input ArchiveInput) (ArchiveResult, error) {
	if input.Body == nil {
		return ArchiveResult{}, fmt.Errorf("archive body is required")
	}

	ext := filepath.Ext(input.Filename)
	if len(ext) > 10 {
		ext = ext[:10]
	}

	tmpFile, err := os.CreateTemp(l.BaseDir, "design-*"+ext)
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("create temp file: %w", err)
	}
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, input.Body); err != nil {
		os.Remove(tmpFile.Name())
		return ArchiveResult{}, fmt.Errorf("write temp file: %w", err)
	}

	return ArchiveResult{
		Key: tmpFile.Name(),
		URL: tmpFile.Name(),
	}, nil
}
