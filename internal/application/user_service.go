package application

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/apierror"
)

// UserService covers the profile surface: reads plus the field-at-a-time
// updates. Credential-adjacent changes (password, email, phone) revalidate
// the current password first.
type UserService struct {
	Users        repository.UserRepository
	Exchange     *AssetExchange
	AvatarFolder string
}

func (s *UserService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByIDWithAvatar(ctx, userID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	return u, nil
}

// UpdateAvatar exchanges the stored avatar for the file at localPath. On the
// first upload a fresh asset row is created and attached; afterwards the
// existing row is updated in place.
func (s *UserService) UpdateAvatar(ctx context.Context, userID, localPath string) (*entity.User, error) {
	u, err := s.Users.GetByIDWithAvatar(ctx, userID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	a, err := s.Exchange.Replace(ctx, localPath, s.AvatarFolder, u.Avatar)
	if err != nil {
		return nil, err
	}
	if u.AvatarID == nil {
		if err := s.Users.SetAvatar(ctx, userID, a.ID); err != nil {
			return nil, apierror.FromRepository(err, "user not found")
		}
	}
	return s.Profile(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return apierror.FromRepository(err, "user not found")
	}
	if !u.CheckPassword(current) {
		return apierror.BadRequest("wrong password")
	}
	if err := u.SetPassword(next); err != nil {
		return err
	}
	return apierror.FromRepository(s.Users.UpdatePassword(ctx, userID, u.PasswordHash), "user not found")
}

func (s *UserService) ChangeEmail(ctx context.Context, userID, password, email string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	if !u.CheckPassword(password) {
		return nil, apierror.BadRequest("wrong password")
	}
	if err := s.Users.UpdateEmail(ctx, userID, email); err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	return s.Profile(ctx, userID)
}

func (s *UserService) ChangePhone(ctx context.Context, userID, password, phone string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	if !u.CheckPassword(password) {
		return nil, apierror.BadRequest("wrong password")
	}
	if err := s.Users.UpdatePhone(ctx, userID, phone); err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	return s.Profile(ctx, userID)
}

func (s *UserService) ChangeName(ctx context.Context, userID, password, name string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	if !u.CheckPassword(password) {
		return nil, apierror.BadRequest("wrong password")
	}
	if err := s.Users.UpdateName(ctx, userID, name); err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	return s.Profile(ctx, userID)
}

// ChangeRole reassigns the target's role after revalidating the acting
// user's password. The super-admin gate lives in the route registration.
func (s *UserService) ChangeRole(ctx context.Context, actorID, targetID, password string, role entity.Role) (*entity.User, error) {
	actor, err := s.Users.GetByID(ctx, actorID)
	if err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	if !actor.CheckPassword(password) {
		return nil, apierror.BadRequest("wrong password")
	}
	if err := s.Users.UpdateRole(ctx, targetID, role); err != nil {
		return nil, apierror.FromRepository(err, "user not found")
	}
	return s.Profile(ctx, targetID)
}
