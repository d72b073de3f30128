package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/test", nil)
	handler(c)
	return w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var resp Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, map[string]string{"name": "test"})
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	resp := parseEnvelope(t, w)
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.Error != "" {
		t.Errorf("expected empty error, got %q", resp.Error)
	}
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OK(c)
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	resp := parseEnvelope(t, w)
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.Data != nil {
		t.Errorf("expected no data, got %v", resp.Data)
	}
}

func TestCreatedID(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		CreatedID(c, 42)
	})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	resp := parseEnvelope(t, w)
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.ID == nil || *resp.ID != 42 {
		t.Errorf("expected id 42, got %v", resp.ID)
	}
}

func TestBadRequest(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		BadRequest(c, "invalid input")
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	resp := parseEnvelope(t, w)
	if resp.Success {
		t.Error("expected success false")
	}
	if resp.Error != "invalid input" {
		t.Errorf("expected error 'invalid input', got %q", resp.Error)
	}
}

func TestNotFound(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		NotFound(c, "project not found")
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	resp := parseEnvelope(t, w)
	if resp.Error != "project not found" {
		t.Errorf("expected error 'project not found', got %q", resp.Error)
	}
}

func TestServerError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		ServerError(c, "db down")
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	resp := parseEnvelope(t, w)
	if resp.Success {
		t.Error("expected success false")
	}
}
