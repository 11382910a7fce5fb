package media

import (
	"context"
	"errors"
	"io"
)

// ErrArchiverDisabled indicates that image archival is not currently enabled.
var ErrArchiverDisabled = errors.New("media archiver disabled")

// ArchiveInput wraps a normalized design image to be kept for later review.
type ArchiveInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// ArchiveResult captures the canonical object key and its accessible URL.
type ArchiveResult struct {
	Key string
	URL string
}

// Archiver hides the backing implementation for storing analyzed images.
type Archiver interface {
	Archive(ctx context.Context, input ArchiveInput) (ArchiveResult, error)
}

type disabledArchiver struct{}

func (disabledArchiver) Archive(_ context.Context, _ ArchiveInput) (ArchiveResult, error) {
	return ArchiveResult{}, ErrArchiverDisabled
}

// Disabled returns an archiver that always signals disabled archival.
func Disabled() Archiver {
	return disabledArchiver{}
}
