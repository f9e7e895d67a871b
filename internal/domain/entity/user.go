package entity

import (
	"time"

	"github.com/alam-gir/agency/pkg/helpers"
)

type Role string

const (
	RoleGuest      Role = "guest"
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// ValidRole reports whether s names one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleGuest, RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User is the aggregate root for the account domain. PasswordHash is always
// a bcrypt hash; construction goes through NewUser or SetPassword so no code
// path can persist a plaintext secret. RefreshToken mirrors the single
// outstanding refresh token (nil when logged out).
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	AvatarID     *string
	Avatar       *Asset // populated by joined fetches only
	RefreshToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with the password already hashed.
func NewUser(name, email, phone, plainPassword string) (*User, error) {
	hash, err := helpers.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	return &User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         RoleUser,
	}, nil
}

// SetPassword replaces the stored hash with the hash of plain.
func (u *User) SetPassword(plain string) error {
	hash, err := helpers.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return helpers.CompareHashAndPassword(u.PasswordHash, plain)
}

// PublicUser is the only outward-facing representation of a user. It never
// carries the password hash or the refresh token.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	Avatar    *Asset    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitize strips the credential fields.
func (u *User) Sanitize() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AvatarURL returns the joined avatar URL, if any.
func (u *User) AvatarURL() string {
	if u.Avatar == nil {
		return ""
	}
	return u.Avatar.URL
}
