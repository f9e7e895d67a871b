package apierror

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/alam-gir/agency/internal/domain/repository"
)

func TestFromRepositoryMapping(t *testing.T) {
	cases := []struct {
		in      error
		status  int
		message string
	}{
		{repository.ErrNotFound, 404, "thing not found"},
		{repository.ErrDuplicate, 409, "duplicate value for a unique field"},
		{repository.ErrInvalidID, 400, "invalid id"},
		{repository.ErrInvalidRef, 400, "referenced record does not exist"},
		{repository.ErrStaleToken, 404, "invalid token or token is used"},
	}
	for _, tc := range cases {
		err := FromRepository(tc.in, "thing not found")
		var ae *APIError
		if !errors.As(err, &ae) {
			t.Fatalf("FromRepository(%v) = %v, not an APIError", tc.in, err)
		}
		if ae.Status != tc.status || ae.Message != tc.message {
			t.Errorf("FromRepository(%v) = %d %q, want %d %q", tc.in, ae.Status, ae.Message, tc.status, tc.message)
		}
	}
}

func TestFromRepositoryPassesUnknownThrough(t *testing.T) {
	boom := errors.New("boom")
	if got := FromRepository(boom, "x"); got != boom {
		t.Errorf("unknown error was translated: %v", got)
	}
	if got := FromRepository(nil, "x"); got != nil {
		t.Errorf("nil error produced %v", got)
	}
}

func TestRespondWritesAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, NotFound("user not found"))
	if w.Code != 404 {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success || body.Message != "user not found" {
		t.Errorf("body = %+v", body)
	}
}

func TestRespondHidesUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, errors.New("pq: connection refused at 10.0.0.3"))
	if w.Code != 500 {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); strings.Contains(got, "10.0.0.3") || strings.Contains(got, "connection refused") {
		t.Error("internal error detail leaked to the client")
	}
}

func TestRespondTranslatesRepositoryErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, repository.ErrDuplicate)
	if w.Code != 409 {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}
