package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/yigit/careerguide/internal/pkg/logger"
)

// PublicPrefix is the URL path under which local uploads are served
const PublicPrefix = "uploads"

// maxNameAttempts bounds retries when two uploads land on the same millisecond
const maxNameAttempts = 5

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory on disk
	baseURL  string // optional absolute URL prefix for returned paths
	now      func() time.Time
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
// When baseURL is non-empty, returned paths are absolute URLs under it.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}, nil
}

// BasePath returns the directory uploads are written to
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile writes the upload to <basePath>/<subPath>/<unix-ms>_<name>
func (ls *LocalStorage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", errors.New("no file to save")
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, name, err := ls.createUnique(dir, fileHeader.Filename)
	if err != nil {
		return "", err
	}
	dstPath := dst.Name()

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to close stored file: %w", err)
	}

	stored := path.Join(PublicPrefix, filepath.ToSlash(subPath), name)
	if ls.baseURL != "" {
		stored = ls.baseURL + "/" + stored
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("stored_path", stored).Msg("File saved successfully")
	return stored, nil
}

// createUnique opens a new file named after the current millisecond, moving
// forward one millisecond whenever the name is already taken.
func (ls *LocalStorage) createUnique(dir, original string) (*os.File, string, error) {
	ts := ls.now()
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := StoredFileName(original, ts)
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			logger.Error().Err(err).Str("dir", dir).Msg("Failed to create destination file")
			return nil, "", fmt.Errorf("failed to create destination file: %w", err)
		}
		ts = ts.Add(time.Millisecond)
	}
	return nil, "", fmt.Errorf("failed to allocate a unique name for %q", original)
}

// DeleteFile removes a stored file. Missing files count as deleted.
func (ls *LocalStorage) DeleteFile(ctx context.Context, storedPath string) error {
	physicalPath, err := ls.physicalPath(storedPath)
	if err != nil {
		return err
	}
	if physicalPath == "" {
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// physicalPath maps a stored path back onto the filesystem, refusing anything
// that would resolve outside basePath.
func (ls *LocalStorage) physicalPath(storedPath string) (string, error) {
	rel := strings.TrimSpace(storedPath)
	if rel == "" {
		return "", nil
	}
	if ls.baseURL != "" {
		rel = strings.TrimPrefix(rel, ls.baseURL)
	}
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.TrimPrefix(rel, PublicPrefix+"/")

	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid file path: %s", storedPath)
	}
	return filepath.Join(ls.basePath, cleaned), nil
}
