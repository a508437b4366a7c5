package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore stores attachment files in an S3-compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// MinioConfig defines connection settings for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket: %w", err)
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Upload writes the object and returns its public URL.
func (s *MinioStore) Upload(ctx context.Context, path string, content []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("uploading object %s: %w", path, err)
	}
	return s.PublicURL(path), nil
}

// Delete removes the object. Removing a missing object is not an error,
// which keeps retried cascades safe.
func (s *MinioStore) Delete(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("deleting object %s: %w", path, err)
	}
	return nil
}

// PublicURL returns the object's URL under the store endpoint.
func (s *MinioStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, path)
}

// PathFromURL recovers the object path from a URL this store produced.
func (s *MinioStore) PathFromURL(fileURL string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", s.client.EndpointURL(), s.bucket)
	if !strings.HasPrefix(fileURL, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}
	return strings.TrimPrefix(fileURL, prefix), nil
}
