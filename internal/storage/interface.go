package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface abstracts the photo-evidence backends. Return-request
// photos are received as multipart uploads and written server-side, so
// the contract is direct save/read plus presigned download URLs for
// serving evidence back to the admin panel.
type StorageInterface interface {
	// SaveFile writes the object under key and returns nothing; keys are
	// opaque paths like "returns/<uuid>.jpg".
	SaveFile(ctx context.Context, key, contentType string, reader io.Reader) error

	// DownloadURL returns a URL the client can fetch the object from,
	// valid for at least expiresIn.
	DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// ReadFile opens a file for reading (used by the mock download handler).
	ReadFile(key string) (io.ReadCloser, error)
}
