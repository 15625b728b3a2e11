package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned when no stored file has the requested name.
var ErrFileNotFound = errors.New("file not found")

// Resource is a stored file opened for reading. Callers must close Body.
type Resource struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// FileStorage stores customer photos by name.
type FileStorage interface {
	// Copy stores the content under a new unique name derived from originalName
	// and returns that name.
	Copy(ctx context.Context, originalName string, content io.Reader) (string, error)

	// Load opens a stored file. It returns ErrFileNotFound when the name is unknown or malformed.
	Load(ctx context.Context, name string) (*Resource, error)

	// Delete removes a stored file and reports whether something was removed.
	Delete(ctx context.Context, name string) bool
}
