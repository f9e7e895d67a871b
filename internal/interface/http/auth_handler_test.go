package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/application"
	"github.com/alam-gir/agency/pkg/helpers"
)

func refreshRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := &application.AuthService{
		JWT:    helpers.NewJWTManager("a-secret", "r-secret", 15*time.Minute, time.Hour),
		Logger: logger,
	}
	h := NewAuthHandler(svc, logger, "", false)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/reset-token", h.Refresh)
	return r
}

func clearedSessionCookies(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	found := map[string]bool{}
	for _, ck := range w.Result().Cookies() {
		if ck.Name != helpers.AccessCookie && ck.Name != helpers.RefreshCookie {
			continue
		}
		found[ck.Name] = true
		if ck.Value != "" {
			t.Errorf("cookie %s value = %q, want empty", ck.Name, ck.Value)
		}
		if ck.MaxAge >= 0 {
			t.Errorf("cookie %s MaxAge = %d, want negative", ck.Name, ck.MaxAge)
		}
	}
	for _, name := range []string{helpers.AccessCookie, helpers.RefreshCookie} {
		if !found[name] {
			t.Errorf("cookie %s was not re-set on the response", name)
		}
	}
}

func TestRefreshWithoutTokenIsNotFound(t *testing.T) {
	r := refreshRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/reset-token", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	clearedSessionCookies(t, w)
}

func TestRefreshFailureExpiresCookies(t *testing.T) {
	r := refreshRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/reset-token", nil)
	req.AddCookie(&http.Cookie{Name: helpers.RefreshCookie, Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	clearedSessionCookies(t, w)
}
