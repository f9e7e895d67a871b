package application

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/pkg/apierror"
)

func tempFile(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "upload-*.png")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString("fake image bytes"); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	_ = f.Close()
	return f.Name()
}

func TestReplaceCreatesNewAsset(t *testing.T) {
	store := &fakeStore{}
	assets := newFakeAssetRepo()
	x := NewAssetExchange(store, assets, quietLogger())
	path := tempFile(t)

	a, err := x.Replace(context.Background(), path, "avatars", nil)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected a persisted asset id")
	}
	if a.Folder != "avatars" {
		t.Errorf("folder = %q, want avatars", a.Folder)
	}
	if len(store.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(store.uploads))
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still exists after success")
	}
}

func TestReplaceUpdatesExistingRowAndDeletesOldObject(t *testing.T) {
	store := &fakeStore{}
	assets := newFakeAssetRepo()
	x := NewAssetExchange(store, assets, quietLogger())

	prev := &entity.Asset{URL: "https://store.example/avatars/old", StorageKey: "avatars/old", Folder: "avatars"}
	if err := assets.Create(context.Background(), prev); err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	oldID := prev.ID

	a, err := x.Replace(context.Background(), tempFile(t), "avatars", prev)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if a.ID != oldID {
		t.Errorf("asset id changed on replace: %q != %q", a.ID, oldID)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "avatars/old" {
		t.Errorf("deleted = %v, want [avatars/old]", store.deleted)
	}
	got, err := assets.GetByID(context.Background(), oldID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.StorageKey == "avatars/old" {
		t.Error("stored row still points at the old object")
	}
}

func TestReplaceUploadFailure(t *testing.T) {
	store := &fakeStore{uploadEr: errors.New("boom")}
	assets := newFakeAssetRepo()
	x := NewAssetExchange(store, assets, quietLogger())
	path := tempFile(t)

	_, err := x.Replace(context.Background(), path, "icons", nil)
	var ae *apierror.APIError
	if !errors.As(err, &ae) || ae.Status != 403 {
		t.Fatalf("err = %v, want upload failure with status 403", err)
	}
	if _, serr := os.Stat(path); !errors.Is(serr, os.ErrNotExist) {
		t.Error("temp file survived a failed upload")
	}
	if len(assets.assets) != 0 {
		t.Error("asset row created despite failed upload")
	}
}

func TestReplaceDeleteFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{deleteEr: errors.New("object gone")}
	assets := newFakeAssetRepo()
	x := NewAssetExchange(store, assets, quietLogger())

	prev := &entity.Asset{StorageKey: "avatars/old", Folder: "avatars"}
	if err := assets.Create(context.Background(), prev); err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	if _, err := x.Replace(context.Background(), tempFile(t), "avatars", prev); err != nil {
		t.Fatalf("Replace should succeed when only the old deletion fails: %v", err)
	}
}

func TestReplaceEmptyPath(t *testing.T) {
	x := NewAssetExchange(&fakeStore{}, newFakeAssetRepo(), quietLogger())
	_, err := x.Replace(context.Background(), "", "avatars", nil)
	var ae *apierror.APIError
	if !errors.As(err, &ae) || ae.Status != 404 {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestDiscardRemovesObjectAndRow(t *testing.T) {
	store := &fakeStore{}
	assets := newFakeAssetRepo()
	x := NewAssetExchange(store, assets, quietLogger())

	a := &entity.Asset{StorageKey: "files/doc", Folder: "files"}
	if err := assets.Create(context.Background(), a); err != nil {
		t.Fatalf("seed asset: %v", err)
	}
	if err := x.Discard(context.Background(), a); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if len(store.deleted) != 1 {
		t.Errorf("deleted = %v, want one key", store.deleted)
	}
	if _, err := assets.GetByID(context.Background(), a.ID); err == nil {
		t.Error("asset row still present after discard")
	}
}
