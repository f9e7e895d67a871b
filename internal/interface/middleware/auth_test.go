package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/helpers"
)

// fakeUsers stubs only the lookup the middleware needs.
type fakeUsers struct {
	repository.UserRepository
	user *entity.User
}

func (f *fakeUsers) GetByIDWithAvatar(ctx context.Context, id string) (*entity.User, error) {
	if f.user != nil && f.user.ID == id {
		cp := *f.user
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func testRouter(users repository.UserRepository, jwt *helpers.JWTManager, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(users, jwt)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "role": u.Role})
	})
	r.GET("/protected", chain...)
	return r
}

func seededAuth(t *testing.T, role entity.Role) (*gin.Engine, string) {
	t.Helper()
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	refresh := "stored-refresh"
	u := &entity.User{ID: "u1", Name: "Alamgir", Email: "alam@example.com", Role: role,
		PasswordHash: "hash", RefreshToken: &refresh}
	tok, _, err := jwt.GenerateAccessToken(helpers.AccessTokenInput{UserID: u.ID, Role: string(role)})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return testRouter(&fakeUsers{user: u}, jwt), tok
}

func TestAuthMissingToken(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	r := testRouter(&fakeUsers{}, jwt)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAuthAcceptsCookieToken(t *testing.T) {
	r, tok := seededAuth(t, entity.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	r, tok := seededAuth(t, entity.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAuthRejectsForgedToken(t *testing.T) {
	r, _ := seededAuth(t, entity.RoleUser)
	forged, _, _ := helpers.NewJWTManager("other", "other", time.Minute, time.Hour).
		GenerateAccessToken(helpers.AccessTokenInput{UserID: "u1"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: forged})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAuthRejectsDeletedUser(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	tok, _, _ := jwt.GenerateAccessToken(helpers.AccessTokenInput{UserID: "ghost"})
	r := testRouter(&fakeUsers{}, jwt)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAuthSanitizesPrincipal(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	refresh := "stored-refresh"
	u := &entity.User{ID: "u1", Role: entity.RoleUser, PasswordHash: "hash", RefreshToken: &refresh}
	tok, _, _ := jwt.GenerateAccessToken(helpers.AccessTokenInput{UserID: "u1"})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/p", Auth(&fakeUsers{user: u}, jwt), func(c *gin.Context) {
		got, _ := CurrentUser(c)
		if got.PasswordHash != "" || got.RefreshToken != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Error("credential fields leaked into the request context")
	}
}

func TestRoleGate(t *testing.T) {
	jwt := helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour)
	mk := func(role entity.Role) (*gin.Engine, string) {
		u := &entity.User{ID: "u1", Role: role}
		tok, _, _ := jwt.GenerateAccessToken(helpers.AccessTokenInput{UserID: "u1", Role: string(role)})
		gin.SetMode(gin.TestMode)
		e := gin.New()
		e.GET("/admin", Auth(&fakeUsers{user: u}, jwt), Role(entity.RoleAdmin, entity.RoleSuperAdmin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return e, tok
	}

	cases := []struct {
		role entity.Role
		want int
	}{
		{entity.RoleUser, http.StatusForbidden},
		{entity.RoleAdmin, http.StatusOK},
		{entity.RoleSuperAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		e, token := mk(tc.role)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: token})
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("role %s: status = %d, want %d", tc.role, w.Code, tc.want)
		}
	}
}
