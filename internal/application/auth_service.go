package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/apierror"
	"github.com/alam-gir/agency/pkg/helpers"
	"github.com/alam-gir/agency/pkg/mailer"
)

// AuthService owns registration, the login/refresh/logout session lifecycle
// and the password reset flow. The single outstanding refresh token per user
// lives on the users row; reset tokens live in Redis under a TTL.
type AuthService struct {
	Users    repository.UserRepository
	JWT      *helpers.JWTManager
	Exchange *AssetExchange
	Redis    *redis.Client
	Mail     *mailer.Mailgun
	Logger   *logrus.Logger

	AvatarFolder string
	ResetURL     string
	ResetTTL     time.Duration
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func resetKey(token string) string {
	return "pwd:reset:token:" + token
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	// AvatarPath is an optional local temp file; empty means no avatar.
	AvatarPath string
}

// Register creates the account. The avatar upload is best effort: a failed
// upload logs a warning and the account is created without one.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if existing, err := s.Users.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, apierror.Conflict("user already exists with this email")
	}
	u, err := entity.NewUser(in.Name, in.Email, in.Phone, in.Password)
	if err != nil {
		return nil, err
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}

	if in.AvatarPath != "" {
		if a, aerr := s.Exchange.Replace(ctx, in.AvatarPath, s.AvatarFolder, nil); aerr != nil {
			if s.Logger != nil {
				s.Logger.WithError(aerr).WithField("user_id", u.ID).Warn("avatar upload failed during registration")
			}
		} else if serr := s.Users.SetAvatar(ctx, u.ID, a.ID); serr != nil && s.Logger != nil {
			s.Logger.WithError(serr).WithField("user_id", u.ID).Warn("avatar attach failed during registration")
		}
	}

	out, err := s.Users.GetByIDWithAvatar(ctx, u.ID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	return out, nil
}

// Login authenticates and stores the minted refresh token, revoking any
// previous session. Unknown email and wrong password answer identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, apierror.NotFound("wrong credentials")
	}
	if !u.CheckPassword(password) {
		return nil, TokenPair{}, apierror.NotFound("wrong credentials")
	}
	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if err := s.Users.SetRefreshToken(ctx, u.ID, pair.RefreshToken); err != nil {
		return nil, TokenPair{}, apierror.FromRepository(err, "user not found")
	}
	return u, pair, nil
}

// Refresh exchanges a valid, currently-stored refresh token for a new pair.
// The presented token must equal the stored one; rotation is a compare and
// swap so a replayed token loses even under a concurrent refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, apierror.NotFound("invalid refresh token")
	}
	u, err := s.Users.GetByIDWithAvatar(ctx, claims.UserID)
	if err != nil {
		return nil, TokenPair{}, apierror.NotFound("invalid refresh token")
	}
	if u.RefreshToken == nil || *u.RefreshToken != refreshToken {
		return nil, TokenPair{}, apierror.NotFound("invalid token or token is used")
	}
	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if err := s.Users.RotateRefreshToken(ctx, u.ID, refreshToken, pair.RefreshToken); err != nil {
		return nil, TokenPair{}, apierror.FromRepository(err, "invalid refresh token")
	}
	return u, pair, nil
}

// Logout drops the stored refresh token, invalidating the session.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.ClearRefreshToken(ctx, userID); err != nil {
		return apierror.FromRepository(err, "user not found")
	}
	return nil
}

func (s *AuthService) issueTokens(u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(helpers.AccessTokenInput{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.AvatarURL(),
		Phone:  u.Phone,
		Role:   string(u.Role),
	})
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}

// ResetInit creates a single-use reset token in Redis and mails the link.
func (s *AuthService) ResetInit(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return apierror.FromRepository(err, "user not found with this email")
	}
	token := uuid.NewString()
	if err := s.Redis.Set(ctx, resetKey(token), u.ID, s.ResetTTL).Err(); err != nil {
		return err
	}
	link := s.ResetURL + "?token=" + token
	if s.Mail != nil {
		subject, text := mailer.ResetPasswordBody(u.Name, link)
		if err := s.Mail.Send(ctx, u.Email, subject, text, ""); err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("user_id", u.ID).Error("reset mail send failed")
			}
			return apierror.Internal("failed to send reset email")
		}
	}
	return nil
}

// ResetConfirm consumes the token, sets the new password and revokes any
// outstanding session.
func (s *AuthService) ResetConfirm(ctx context.Context, token, newPassword string) error {
	key := resetKey(token)
	userID, err := s.Redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return apierror.NotFound("invalid token or token is used")
	}
	if err != nil {
		return err
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return apierror.FromRepository(err, "user not found")
	}
	if err := u.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, u.ID, u.PasswordHash); err != nil {
		return apierror.FromRepository(err, "user not found")
	}
	if err := s.Redis.Del(ctx, key).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("reset token cleanup failed")
	}
	if err := s.Users.ClearRefreshToken(ctx, u.ID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("session revocation after reset failed")
	}
	return nil
}
