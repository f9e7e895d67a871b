package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role)
	return translate(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

const userColumns = `u.id, u.name, u.email, u.phone, u.password_hash, u.role, u.avatar_id, u.refresh_token, u.created_at, u.updated_at`

func (r *UserRepository) scanUser(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.AvatarID, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanUser(ctx, `
		SELECT `+userColumns+`
		FROM users u
		WHERE u.id = $1
	`, id)
}

func (r *UserRepository) GetByIDWithAvatar(ctx context.Context, id string) (*entity.User, error) {
	return r.scanUserWithAvatar(ctx, `u.id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanUserWithAvatar(ctx, `u.email = $1`, email)
}

func (r *UserRepository) scanUserWithAvatar(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	var (
		aID, aURL, aKey, aFolder *string
	)
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`, a.id, a.url, a.storage_key, a.folder
		FROM users u
		LEFT JOIN assets a ON a.id = u.avatar_id
		WHERE `+where+`
	`, arg)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.AvatarID, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt,
		&aID, &aURL, &aKey, &aFolder); err != nil {
		return nil, translate(err)
	}
	if aID != nil {
		u.Avatar = &entity.Asset{ID: *aID, URL: deref(aURL), StorageKey: deref(aKey), Folder: deref(aFolder)}
	}
	return u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *UserRepository) SetAvatar(ctx context.Context, userID, assetID string) error {
	return r.exec(ctx, `UPDATE users SET avatar_id = $2, updated_at = now() WHERE id = $1`, userID, assetID)
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, userID, token string) error {
	return r.exec(ctx, `UPDATE users SET refresh_token = $2, updated_at = now() WHERE id = $1`, userID, token)
}

// RotateRefreshToken is the compare-and-swap that keeps rotation
// linearizable per user: only the caller presenting the currently stored
// token wins; everyone else gets ErrStaleToken.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, userID, old, next string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET refresh_token = $3, updated_at = now()
		WHERE id = $1 AND refresh_token = $2
	`, userID, old, next)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrStaleToken
	}
	return nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return r.exec(ctx, `UPDATE users SET refresh_token = NULL, updated_at = now() WHERE id = $1`, userID)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, userID, passwordHash)
}

func (r *UserRepository) UpdateEmail(ctx context.Context, userID, email string) error {
	return r.exec(ctx, `UPDATE users SET email = $2, updated_at = now() WHERE id = $1`, userID, email)
}

func (r *UserRepository) UpdatePhone(ctx context.Context, userID, phone string) error {
	return r.exec(ctx, `UPDATE users SET phone = $2, updated_at = now() WHERE id = $1`, userID, phone)
}

func (r *UserRepository) UpdateName(ctx context.Context, userID, name string) error {
	return r.exec(ctx, `UPDATE users SET name = $2, updated_at = now() WHERE id = $1`, userID, name)
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID string, role entity.Role) error {
	return r.exec(ctx, `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, userID, role)
}

func (r *UserRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
