package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"isbnsplit/internal/isbn/handler"
	"isbnsplit/internal/isbn/service"
	"isbnsplit/internal/isbn/validator"
	"isbnsplit/pkg/app"
	"isbnsplit/pkg/config"
	apperrors "isbnsplit/pkg/errors"
	"isbnsplit/pkg/logger"
)

// newTestServer assembles the API the way cmd/isbn-api does.
func newTestServer(t *testing.T) *ISBNClient {
	t.Helper()

	cfg := &config.Config{
		Port:            "8080",
		RequestTimeout:  time.Second,
		MaxRequestSize:  4096,
		ShutdownTimeout: time.Second,
		MaxLineLength:   22,
		Log:             logger.Discard(),
	}

	v := validator.NewISBNValidator(cfg.Log)
	svc := service.NewDecomposerService(v, nil, cfg.Log)

	a := app.NewApplication()
	a.SetApp(cfg,
		handler.NewHealthHandler(nil, cfg.Log),
		handler.NewISBNHandler(svc, v, cfg.MaxLineLength, cfg.Log),
	)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	return NewISBNClient(srv.URL)
}

func TestISBNClient_Decompose(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		isbn       string
		wantStatus int
		wantCode   string
	}{
		{name: "canonical", isbn: "978-0-393-97950-3", wantStatus: http.StatusOK},
		{name: "mixed delimiters", isbn: "978:0|393.97950/3", wantStatus: http.StatusOK},
		{name: "bad checksum", isbn: "978-0-393-97950-4", wantStatus: http.StatusUnprocessableEntity, wantCode: apperrors.CodeInvalidChecksum},
		{name: "letter", isbn: "978-0-39A-97950-3", wantStatus: http.StatusUnprocessableEntity, wantCode: apperrors.CodeInvalidCharacter},
		{name: "too few groups", isbn: "978-0-393-97950", wantStatus: http.StatusUnprocessableEntity, wantCode: apperrors.CodeInvalidCharacter},
		{name: "too long", isbn: strings.Repeat("9", 23), wantStatus: http.StatusBadRequest, wantCode: apperrors.CodeInputTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.Decompose(ctx, tt.isbn)
			if err != nil {
				t.Fatalf("Decompose() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.wantStatus, resp.Body)
			}
			if tt.wantCode == "" {
				return
			}
			errResp, err := resp.ErrorBody()
			if err != nil {
				t.Fatalf("ErrorBody() error = %v", err)
			}
			if errResp.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", errResp.Code, tt.wantCode)
			}
		})
	}
}

func TestISBNClient_Split(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	got, err := c.Split(ctx, "978-0-393-97950-3")
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if got.GSIPrefix != "978" || got.GroupIdentifier != "0" || got.PublisherCode != "393" ||
		got.ItemNumber != "97950" || got.CheckDigit != "3" {
		t.Errorf("Split() = %+v", got)
	}

	if _, err := c.Split(ctx, "978-0-393-97950-4"); err == nil || !strings.Contains(err.Error(), "An invalid ISBN checksum was found.") {
		t.Errorf("Split() error = %v, want checksum message", err)
	}
}

func TestISBNClient_DecomposeRaw(t *testing.T) {
	c := newTestServer(t)

	resp, err := c.DecomposeRaw(context.Background(), []byte(`{"isbn":`))
	if err != nil {
		t.Fatalf("DecomposeRaw() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestISBNClient_Health(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	if err := c.WaitForHealthy(ctx); err != nil {
		t.Fatalf("WaitForHealthy() error = %v", err)
	}

	resp, err := c.Ready(ctx)
	if err != nil {
		t.Fatalf("Ready() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("ready status = %d", resp.StatusCode)
	}
}

func TestHttpClient_WaitForHealthyTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := NewHttpClient(srv.URL).WaitForHealthy(context.Background(), 100*time.Millisecond); err == nil {
		t.Error("WaitForHealthy() expected timeout error")
	}
}
