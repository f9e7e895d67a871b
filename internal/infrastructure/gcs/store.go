// Package gcs adapts Google Cloud Storage to the object storage port used by
// the asset exchange.
package gcs

import (
	"context"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/alam-gir/agency/internal/application"
	"github.com/alam-gir/agency/pkg/helpers"
)

type Store struct {
	Client *storage.Client
	Bucket string
}

func NewStore(client *storage.Client, bucket string) *Store {
	return &Store{Client: client, Bucket: bucket}
}

// Upload streams the local file into bucket/folder under a random object
// name, keeping the original extension so the content type survives.
func (s *Store) Upload(ctx context.Context, localPath, folder string) (application.UploadResult, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return application.UploadResult{}, err
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(localPath))
	key := path.Join(folder, uuid.NewString()+ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := helpers.UploadObject(ctx, s.Client, s.Bucket, key, contentType, f)
	if err != nil {
		return application.UploadResult{}, err
	}
	return application.UploadResult{URL: url, Key: key}, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return helpers.DeleteObject(ctx, s.Client, s.Bucket, key)
}

var _ application.ObjectStorage = (*Store)(nil)
