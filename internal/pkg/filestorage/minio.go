package filestorage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// MinioStorage keeps uploads in an S3-compatible bucket. Stored paths have the
// form <bucket>/<subPath>/<unix-ms>_<name>.
type MinioStorage struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// MinioOptions configures the object storage backend
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// normaliseEndpoint accepts either "minio:9000" or "http(s)://minio:9000".
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}

// NewMinioStorage connects to the bucket, creating it when missing
func NewMinioStorage(ctx context.Context, opts MinioOptions) (*MinioStorage, error) {
	endpoint, secure, err := normaliseEndpoint(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid minio endpoint: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
		logger.Info().Str("bucket", opts.Bucket).Msg("Created upload bucket")
	}

	return &MinioStorage{client: client, bucket: opts.Bucket, now: time.Now}, nil
}

// SaveFile uploads the part as a new object
func (ms *MinioStorage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", errors.New("no file to save")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := path.Join(subPath, StoredFileName(fileHeader.Filename, ms.now()))
	_, err = ms.client.PutObject(ctx, ms.bucket, key, src, fileHeader.Size, minio.PutObjectOptions{
		ContentType: DeclaredMimeType(fileHeader),
	})
	if err != nil {
		logger.Error().Err(err).Str("bucket", ms.bucket).Str("key", key).Msg("Failed to upload object")
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	stored := ms.bucket + "/" + key
	logger.Info().Str("filename", fileHeader.Filename).Str("stored_path", stored).Msg("File saved successfully")
	return stored, nil
}

// DeleteFile removes the object behind a stored path
func (ms *MinioStorage) DeleteFile(ctx context.Context, storedPath string) error {
	key := strings.TrimPrefix(strings.TrimSpace(storedPath), ms.bucket+"/")
	if key == "" {
		return nil
	}

	if err := ms.client.RemoveObject(ctx, ms.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
