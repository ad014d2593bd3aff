package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing listing images.
// Implementations write to a blob bucket and return a stable URL.
type ImageStore interface {
	// Save writes the image under the given key and returns its public URL.
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
