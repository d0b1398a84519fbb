package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
)

// TestLogger verifies one structured record per request with the captured status.
//
// WHY: The record level follows the status class so 5xx responses surface at error level.
func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs at info", http.StatusOK, "INFO"},
		{"client error logs at warn", http.StatusNotFound, "WARN"},
		{"server error logs at error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/transaction%0D%0A", nil)
			w := httptest.NewRecorder()
			middleware.Logger(logger)(next).ServeHTTP(w, req)

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("log output is not a single JSON record: %v", err)
			}
			if record["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", record["level"], tt.wantLevel)
			}
			if record["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", record["status"], tt.status)
			}
			if record["path"] != "/api/transaction" {
				t.Errorf("path = %q, want CR/LF stripped", record["path"])
			}
		})
	}
}
