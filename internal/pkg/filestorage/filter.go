package filestorage

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
)

// Upload sub-directories
const (
	ProfilePictureDir  = "profile_pictures"
	InstitutionLogoDir = "logos"
)

// InvalidFileTypeMessage is returned to clients for rejected uploads
const InvalidFileTypeMessage = "Only image files (jpeg, jpg, png, gif) are allowed"

// AllowedImageTypes is the MIME allow-list for profile pictures and logos
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// DeclaredMimeType returns the lower-cased media type the client sent for the part
func DeclaredMimeType(fileHeader *multipart.FileHeader) string {
	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return strings.ToLower(mediaType)
}

// ValidateImage checks an upload against the image allow-list and size limit
// and returns the accepted MIME type. The declared type decides; content is
// only sniffed when the part carries no Content-Type at all.
func ValidateImage(fileHeader *multipart.FileHeader, maxBytes int64) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewValidationError("File is required")
	}

	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return "", apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("File exceeds the %d byte upload limit", maxBytes))
	}

	mimeType := DeclaredMimeType(fileHeader)
	if mimeType == "" {
		sniffed, err := sniffMimeType(fileHeader)
		if err != nil {
			return "", fmt.Errorf("failed to inspect uploaded file: %w", err)
		}
		mimeType = sniffed
	}

	if !AllowedImageTypes[mimeType] {
		return "", apperrors.NewCustomError(apperrors.ErrInvalidFileType, InvalidFileTypeMessage)
	}

	return mimeType, nil
}

func sniffMimeType(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	mediaType, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return detected.String(), nil
	}
	return mediaType, nil
}

// StoredFileName builds the on-disk name <unix-ms>_<original-filename>
func StoredFileName(original string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "" || base == "." || base == "/" || base == ".." {
		base = "upload"
	}
	return fmt.Sprintf("%d_%s", now.UnixMilli(), base)
}
