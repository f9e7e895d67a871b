package application

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeStore is an in-memory ObjectStorage recording uploads and deletions.
type fakeStore struct {
	mu       sync.Mutex
	seq      int
	uploads  []string
	deleted  []string
	uploadEr error
	deleteEr error
}

func (s *fakeStore) Upload(ctx context.Context, localPath, folder string) (UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadEr != nil {
		return UploadResult{}, s.uploadEr
	}
	s.seq++
	key := folder + "/obj-" + strconv.Itoa(s.seq)
	s.uploads = append(s.uploads, key)
	return UploadResult{URL: "https://store.example/" + key, Key: key}, nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteEr != nil {
		return s.deleteEr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

// fakeAssetRepo keeps asset rows in a map.
type fakeAssetRepo struct {
	mu     sync.Mutex
	seq    int
	assets map[string]entity.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[string]entity.Asset{}}
}

func (r *fakeAssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	a.ID = "asset-" + strconv.Itoa(r.seq)
	r.assets[a.ID] = *a
	return nil
}

func (r *fakeAssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAssetRepo) Update(ctx context.Context, a *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[a.ID]; !ok {
		return repository.ErrNotFound
	}
	r.assets[a.ID] = *a
	return nil
}

func (r *fakeAssetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

// fakeUserRepo implements the user repository against a map, including the
// compare-and-swap semantics of refresh token rotation.
type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) get(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *fakeUserRepo) GetByIDWithAvatar(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Email == email {
			return r.get(id)
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) SetAvatar(ctx context.Context, userID, assetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.AvatarID = &assetID
	return nil
}

func (r *fakeUserRepo) SetRefreshToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = &token
	return nil
}

func (r *fakeUserRepo) RotateRefreshToken(ctx context.Context, userID, old, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok || u.RefreshToken == nil || *u.RefreshToken != old {
		return repository.ErrStaleToken
	}
	u.RefreshToken = &next
	return nil
}

func (r *fakeUserRepo) ClearRefreshToken(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = nil
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.set(userID, func(u *entity.User) { u.PasswordHash = passwordHash })
}

func (r *fakeUserRepo) UpdateEmail(ctx context.Context, userID, email string) error {
	return r.set(userID, func(u *entity.User) { u.Email = email })
}

func (r *fakeUserRepo) UpdatePhone(ctx context.Context, userID, phone string) error {
	return r.set(userID, func(u *entity.User) { u.Phone = phone })
}

func (r *fakeUserRepo) UpdateName(ctx context.Context, userID, name string) error {
	return r.set(userID, func(u *entity.User) { u.Name = name })
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, userID string, role entity.Role) error {
	return r.set(userID, func(u *entity.User) { u.Role = role })
}

func (r *fakeUserRepo) set(userID string, fn func(*entity.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	fn(u)
	return nil
}

var (
	_ repository.UserRepository  = (*fakeUserRepo)(nil)
	_ repository.AssetRepository = (*fakeAssetRepo)(nil)
	_ ObjectStorage              = (*fakeStore)(nil)
)
