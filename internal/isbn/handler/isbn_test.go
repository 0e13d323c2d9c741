package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"isbnsplit/internal/isbn/service"
	"isbnsplit/internal/isbn/validator"
	apperrors "isbnsplit/pkg/errors"
	"isbnsplit/pkg/logger"
	"isbnsplit/pkg/model"
)

type decomposeResponse struct {
	Data model.Decomposition `json:"data"`
}

func newTestHandler() *ISBNHandler {
	log := logger.Discard()
	v := validator.NewISBNValidator(log)
	return NewISBNHandler(service.NewDecomposerService(v, nil, log), v, 22, log)
}

func TestDecompose(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "valid isbn",
			body:       `{"isbn":"978-0-393-97950-3"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid character",
			body:       `{"isbn":"978-0-393-97950"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeInvalidCharacter,
		},
		{
			name:       "invalid checksum",
			body:       `{"isbn":"978-0-393-97950-1"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apperrors.CodeInvalidChecksum,
		},
		{
			name:       "too long",
			body:       `{"isbn":"978-0-393-97950-3-1234567890"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInputTooLong,
		},
		{
			name:       "missing isbn field",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeValidation,
		},
		{
			name:       "malformed json",
			body:       `{"isbn":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
		},
		{
			name:       "unknown field",
			body:       `{"isbn":"978-0-393-97950-3","format":"13"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/isbn/decompose", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Decompose(w, req, httprouter.Params{})

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			if tt.wantCode == "" {
				var resp decomposeResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid JSON body: %v", err)
				}
				want := model.Decomposition{
					GSIPrefix:       "978",
					GroupIdentifier: "0",
					PublisherCode:   "393",
					ItemNumber:      "97950",
					CheckDigit:      "3",
				}
				if resp.Data != want {
					t.Errorf("data = %+v, want %+v", resp.Data, want)
				}
				return
			}

			var resp apperrors.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestDecompose_ThroughRouter(t *testing.T) {
	router := httprouter.New()
	newTestHandler().RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/isbn/decompose", strings.NewReader(`{"isbn":"978|0|393|97950|3"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/isbn/decompose", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		check      ReadinessCheck
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			path:       "/health",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:       "ready without events",
			path:       "/ready",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ready"`,
		},
		{
			name:       "ready with healthy events",
			check:      func(ctx context.Context) error { return nil },
			path:       "/ready",
			wantStatus: http.StatusOK,
			wantBody:   `"events":"ok"`,
		},
		{
			name:       "ready with broken events",
			check:      func(ctx context.Context) error { return errors.New("dial failed") },
			path:       "/ready",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"status":"unavailable"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := httprouter.New()
			NewHealthHandler(tt.check, logger.Discard()).RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
