package usersearch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type handlerResponse struct {
	Data []User `json:"data"`
}

func testDirectory() Directory {
	return NewStaticDirectory([]User{
		{ID: 1, Login: "ada", DisplayName: "Ada Lovelace", Email: "ada@example.com"},
		{ID: 2, Login: "adele", DisplayName: "Adele <script>"},
		{ID: 3, Login: "grace", DisplayName: "Grace Hopper"},
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handlerResponse {
	t.Helper()
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestNewHandler_EmptyQueryReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(WithDirectory(testDirectory()))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data array, got %s", rec.Body.String())
	}
}

func TestNewHandler_SearchAndLimitClamped(t *testing.T) {
	h := NewHandler(WithDirectory(testDirectory()), WithMaxLimit(1))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?search=ad&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 1 || payload.Data[0].Login != "ada" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_EscapesHTMLInJSON(t *testing.T) {
	h := NewHandler(WithDirectory(testDirectory()))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?search=adele", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "<script>") {
		t.Fatalf("expected escaped markup, got %s", rec.Body.String())
	}
	if payload := decode(t, rec); payload.Data[0].DisplayName != "Adele <script>" {
		t.Fatalf("display name should round-trip, got %q", payload.Data[0].DisplayName)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(WithDirectory(testDirectory()), WithSearchParam("q"), WithLimitParam("n"))

	req := httptest.NewRequest(http.MethodGet, "/x?q=grace&n=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 1 || payload.Data[0].ID != 3 {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithDirectory(testDirectory()),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?search=ada", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithDirectory(testDirectory()))

	req := httptest.NewRequest(http.MethodPost, "/api/users/search?search=ada", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestNewHandler_HeadWritesNoBody(t *testing.T) {
	h := NewHandler(WithDirectory(testDirectory()))

	req := httptest.NewRequest(http.MethodHead, "/api/users/search?search=ada", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewHandler_DirectoryFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := NewHandler(
		WithLogger(zap.New(core)),
		WithDirectory(DirectoryFunc(func(context.Context, string, int) ([]User, error) {
			return nil, errors.New("db down")
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?search=ada", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if logs.FilterMessage("user search failed").Len() != 1 {
		t.Fatalf("expected one error log, got %#v", logs.All())
	}
}
