package application

import (
	"context"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/apierror"
)

// UploadResult is what the object store hands back after a successful upload.
type UploadResult struct {
	URL string
	Key string
}

// ObjectStorage abstracts the remote object store so the exchange can be
// exercised without network access.
type ObjectStorage interface {
	Upload(ctx context.Context, localPath, folder string) (UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// AssetExchange swaps a stored asset for a freshly uploaded one. The upload
// of the new object and the deletion of the previous one run concurrently;
// the local temp file is removed once the attempt settles, success or not.
type AssetExchange struct {
	Store  ObjectStorage
	Assets repository.AssetRepository
	Logger *logrus.Logger
}

func NewAssetExchange(store ObjectStorage, assets repository.AssetRepository, logger *logrus.Logger) *AssetExchange {
	return &AssetExchange{Store: store, Assets: assets, Logger: logger}
}

// Replace uploads the file at localPath into folder and records it. When prev
// is non-nil its remote object is deleted and its row is updated in place, so
// references to the asset id stay valid. A failed deletion of the old object
// is logged and otherwise ignored; the new upload already succeeded and the
// orphan can be swept later.
func (x *AssetExchange) Replace(ctx context.Context, localPath, folder string, prev *entity.Asset) (*entity.Asset, error) {
	if localPath == "" {
		return nil, apierror.NotFound("file not found")
	}
	defer func() {
		if err := os.Remove(localPath); err != nil && x.Logger != nil {
			x.Logger.WithError(err).WithField("path", localPath).Warn("temp file cleanup failed")
		}
	}()

	var (
		wg     sync.WaitGroup
		res    UploadResult
		upErr  error
		delErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		res, upErr = x.Store.Upload(ctx, localPath, folder)
	}()
	if prev != nil && prev.StorageKey != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			delErr = x.Store.Delete(ctx, prev.StorageKey)
		}()
	}
	wg.Wait()

	if delErr != nil && x.Logger != nil {
		x.Logger.WithError(delErr).WithField("key", prev.StorageKey).Warn("previous object deletion failed")
	}
	if upErr != nil {
		if x.Logger != nil {
			x.Logger.WithError(upErr).WithField("folder", folder).Error("object upload failed")
		}
		return nil, apierror.UploadFailed("failed to upload file")
	}

	if prev != nil {
		prev.URL = res.URL
		prev.StorageKey = res.Key
		prev.Folder = folder
		if err := x.Assets.Update(ctx, prev); err != nil {
			return nil, err
		}
		return prev, nil
	}

	a := &entity.Asset{URL: res.URL, StorageKey: res.Key, Folder: folder}
	if err := x.Assets.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Discard removes an asset entirely: remote object first, then the row.
// A missing remote object is not fatal; the row removal is.
func (x *AssetExchange) Discard(ctx context.Context, a *entity.Asset) error {
	if a.StorageKey != "" {
		if err := x.Store.Delete(ctx, a.StorageKey); err != nil && x.Logger != nil {
			x.Logger.WithError(err).WithField("key", a.StorageKey).Warn("object deletion failed")
		}
	}
	return x.Assets.Delete(ctx, a.ID)
}
