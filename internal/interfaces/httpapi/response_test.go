package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/sports-analytics/internal/platform/resilience"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: team=1", usecase.ErrNotFound), status: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("%w: duplicate", usecase.ErrConflict), status: http.StatusConflict},
		{name: "rate limited", err: errRateLimited, status: http.StatusTooManyRequests},
		{name: "dependency", err: fmt.Errorf("%w: db", usecase.ErrDependencyUnavailable), status: http.StatusServiceUnavailable},
		{name: "circuit open", err: fmt.Errorf("list teams: %w", resilience.ErrCircuitOpen), status: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("list matches: %w", context.DeadlineExceeded), status: http.StatusGatewayTimeout},
		{name: "unknown", err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := mapError(tc.err).HTTPStatus; got != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, got)
			}
		})
	}
}

func TestWriteError_MasksInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("dial tcp 10.0.0.1:5432: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.1") {
		t.Fatalf("internal error detail leaked: %s", rec.Body.String())
	}
}
