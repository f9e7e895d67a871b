package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSuccessWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Success(c, 201, map[string]string{"id": "x"}, "created", nil)

	if w.Code != 201 {
		t.Fatalf("status = %d", w.Code)
	}
	var body APIResponse[map[string]string]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Message != "created" || body.RequestID != "req-1" {
		t.Errorf("body = %+v", body)
	}
	if body.Data["id"] != "x" {
		t.Errorf("data = %v", body.Data)
	}
}

func TestSuccessDefaultsTo200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success[any](c, 0, nil, "ok", nil)
	if w.Code != 200 {
		t.Errorf("status = %d", w.Code)
	}
}

func TestErrorWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error[any](c, 404, "not found", map[string]string{"id": "is invalid"})

	if w.Code != 404 {
		t.Fatalf("status = %d", w.Code)
	}
	var body APIResponse[any]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success || body.Message != "not found" || body.Error == nil {
		t.Errorf("body = %+v", body)
	}
}
