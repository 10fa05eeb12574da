package filestorage

import (
	"context"
	"mime/multipart"
)

// FileStorage persists accepted uploads and returns the path stored on database rows
type FileStorage interface {
	// SaveFile stores the upload under subPath and returns its stored path
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file; missing files are not an error
	DeleteFile(ctx context.Context, storedPath string) error
}
