package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Fetches returning a user include the credential columns; handlers must
// sanitize before responding.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByIDWithAvatar resolves the avatar reference as an explicit join.
	GetByIDWithAvatar(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	SetAvatar(ctx context.Context, userID, assetID string) error

	// SetRefreshToken unconditionally overwrites the outstanding refresh
	// token; this is the revocation point for previous sessions.
	SetRefreshToken(ctx context.Context, userID, token string) error
	// RotateRefreshToken replaces old with next only if old is still the
	// stored value. Returns ErrStaleToken when another rotation won.
	RotateRefreshToken(ctx context.Context, userID, old, next string) error
	// ClearRefreshToken sets the stored token to NULL (never empty string).
	ClearRefreshToken(ctx context.Context, userID string) error

	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateEmail(ctx context.Context, userID, email string) error
	UpdatePhone(ctx context.Context, userID, phone string) error
	UpdateName(ctx context.Context, userID, name string) error
	UpdateRole(ctx context.Context, userID string, role entity.Role) error
}
