package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	t.Run("sets content-type and status code correctly", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusOK, map[string]string{"message": "success"})

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
		}
	})

	t.Run("handles nil data without a body", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusNoContent, nil)

		if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
			t.Errorf("Expected empty 204, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("handles un-encodable data gracefully", func(t *testing.T) {
		w := httptest.NewRecorder()

		// Channels cannot be JSON encoded; the status is already written.
		RespondJSON(w, http.StatusOK, map[string]any{"channel": make(chan int)})

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondError(w, http.StatusNotFound, "transaction not found", nil)

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["error"] != "transaction not found" {
		t.Errorf("error = %v", body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Error("nil details should be omitted")
	}
}
