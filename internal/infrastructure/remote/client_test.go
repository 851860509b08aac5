package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/repositories"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

func TestFetchSendsTokenAndReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/en" {
			t.Errorf("path = %q, want /content/en", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = w.Write([]byte(`{"general":{"heroTitle":"Build"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", srv.Client(), logging.NewDiscardLogger())
	body, err := c.Fetch(context.Background(), repositories.RecordEN)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
}

func TestFetchNon2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", srv.Client(), logging.NewDiscardLogger())
	_, err := c.Fetch(context.Background(), repositories.RecordAR)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 StatusError", err)
	}
}

func TestFetchRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", srv.Client(), logging.NewDiscardLogger())
	if _, err := c.Fetch(context.Background(), repositories.RecordGlobal); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestPublishPutsBody(t *testing.T) {
	t.Parallel()

	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", srv.Client(), logging.NewDiscardLogger())
	if err := c.Publish(context.Background(), repositories.RecordGlobal, json.RawMessage(`{"a":1}`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if gotMethod != http.MethodPut || gotBody != `{"a":1}` {
		t.Fatalf("method=%s body=%s", gotMethod, gotBody)
	}
}
