package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alam-gir/agency/pkg/apierror"
	"github.com/alam-gir/agency/pkg/helpers"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	return &AuthService{
		Users:        users,
		JWT:          helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 720*time.Hour),
		Exchange:     NewAssetExchange(&fakeStore{}, newFakeAssetRepo(), quietLogger()),
		Logger:       quietLogger(),
		AvatarFolder: "avatars",
	}
}

func register(t *testing.T, s *AuthService) string {
	t.Helper()
	u, err := s.Register(context.Background(), RegisterInput{
		Name:     "Alamgir",
		Email:    "alam@example.com",
		Phone:    "01712345678",
		Password: "secret12",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return u.ID
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(newFakeUserRepo())
	register(t, s)

	_, err := s.Register(context.Background(), RegisterInput{
		Name: "Other", Email: "alam@example.com", Phone: "01812345678", Password: "secret12",
	})
	var ae *apierror.APIError
	if !errors.As(err, &ae) || ae.Status != 409 {
		t.Fatalf("err = %v, want 409", err)
	}
}

func TestRegisterDoesNotStorePlaintext(t *testing.T) {
	users := newFakeUserRepo()
	s := newAuthService(users)
	id := register(t, s)

	u, err := users.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if u.PasswordHash == "secret12" || u.PasswordHash == "" {
		t.Error("password stored incorrectly")
	}
	if !u.CheckPassword("secret12") {
		t.Error("stored hash does not verify the original password")
	}
}

func TestLoginWrongCredentialsAreUniform(t *testing.T) {
	s := newAuthService(newFakeUserRepo())
	register(t, s)

	_, _, errUnknown := s.Login(context.Background(), "nobody@example.com", "secret12")
	_, _, errWrongPwd := s.Login(context.Background(), "alam@example.com", "not-it-1")

	for _, err := range []error{errUnknown, errWrongPwd} {
		var ae *apierror.APIError
		if !errors.As(err, &ae) || ae.Status != 404 || ae.Message != "wrong credentials" {
			t.Fatalf("err = %v, want 404 wrong credentials", err)
		}
	}
}

func TestLoginStoresRefreshToken(t *testing.T) {
	users := newFakeUserRepo()
	s := newAuthService(users)
	id := register(t, s)

	_, pair, err := s.Login(context.Background(), "alam@example.com", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	u, _ := users.GetByID(context.Background(), id)
	if u.RefreshToken == nil || *u.RefreshToken != pair.RefreshToken {
		t.Error("stored refresh token does not match the issued one")
	}
}

func TestRefreshRotatesAndInvalidatesOldToken(t *testing.T) {
	users := newFakeUserRepo()
	s := newAuthService(users)
	id := register(t, s)

	_, first, err := s.Login(context.Background(), "alam@example.com", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	_, second, err := s.Refresh(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("refresh token was not rotated")
	}
	u, _ := users.GetByID(context.Background(), id)
	if u.RefreshToken == nil || *u.RefreshToken != second.RefreshToken {
		t.Error("stored token is not the rotated one")
	}

	// Replaying the consumed token must fail.
	_, _, err = s.Refresh(context.Background(), first.RefreshToken)
	var ae *apierror.APIError
	if !errors.As(err, &ae) || ae.Status != 404 || ae.Message != "invalid token or token is used" {
		t.Fatalf("replay err = %v, want 404 invalid token or token is used", err)
	}
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	s := newAuthService(newFakeUserRepo())
	register(t, s)

	_, _, err := s.Refresh(context.Background(), "not-a-jwt")
	var ae *apierror.APIError
	if !errors.As(err, &ae) || ae.Status != 404 {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	users := newFakeUserRepo()
	s := newAuthService(users)
	id := register(t, s)

	_, pair, err := s.Login(context.Background(), "alam@example.com", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(context.Background(), id); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	u, _ := users.GetByID(context.Background(), id)
	if u.RefreshToken != nil {
		t.Error("refresh token still stored after logout")
	}
	if _, _, err := s.Refresh(context.Background(), pair.RefreshToken); err == nil {
		t.Error("refresh succeeded after logout")
	}
}

func TestLogoutUnknownUser(t *testing.T) {
	s := newAuthService(newFakeUserRepo())
	err := s.Logout(context.Background(), "missing")
	var ae *apierror.APIError
	if !errors.As(err, &ae) || ae.Status != 404 || ae.Message != "user not found" {
		t.Fatalf("err = %v, want 404 user not found", err)
	}
}

func TestRegisterWithAvatarAttaches(t *testing.T) {
	users := newFakeUserRepo()
	s := newAuthService(users)

	u, err := s.Register(context.Background(), RegisterInput{
		Name: "Alamgir", Email: "alam@example.com", Phone: "01712345678", Password: "secret12",
		AvatarPath: tempFile(t),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	stored, _ := users.GetByID(context.Background(), u.ID)
	if stored.AvatarID == nil {
		t.Error("avatar was not attached")
	}
}

func TestRegisterSurvivesAvatarUploadFailure(t *testing.T) {
	users := newFakeUserRepo()
	s := newAuthService(users)
	s.Exchange = NewAssetExchange(&fakeStore{uploadEr: errors.New("boom")}, newFakeAssetRepo(), quietLogger())

	u, err := s.Register(context.Background(), RegisterInput{
		Name: "Alamgir", Email: "alam@example.com", Phone: "01712345678", Password: "secret12",
		AvatarPath: tempFile(t),
	})
	if err != nil {
		t.Fatalf("Register should succeed without the avatar: %v", err)
	}
	if u.AvatarID != nil {
		t.Error("avatar id set despite failed upload")
	}
}
