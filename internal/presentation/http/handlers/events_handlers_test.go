package handlers

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/stores"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/messaging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/server"
	"github.com/gin-gonic/gin"
)

func TestGetEventsStreamsContentUpdates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewDiscardLogger()
	documents := stores.NewDocumentStore(logger)
	broadcaster := messaging.NewSSEBroadcaster(logger)
	documents.OnReplace(broadcaster.BroadcastContentUpdated)

	r := gin.New()
	r.GET("/events", NewEventsHandlers(broadcaster, documents, logger).GetEvents)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/events")
	if err != nil {
		t.Fatalf("GET /events: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}

	lines := make(chan string, 16)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	next := func() string {
		t.Helper()
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("stream closed")
			}
			return line
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for event")
		}
		return ""
	}

	if got := next(); got != "event: connected" {
		t.Fatalf("first line = %q", got)
	}
	if got := next(); !strings.Contains(got, `"state":"loading"`) {
		t.Fatalf("connected data = %q", got)
	}
	next()

	deadline := time.Now().Add(5 * time.Second)
	for broadcaster.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	documents.Replace(content.EmptyDocument(), "admin")

	if got := next(); got != "event: content_updated" {
		t.Fatalf("event line = %q", got)
	}
	if got := next(); !strings.Contains(got, `"version":1`) {
		t.Fatalf("update data = %q", got)
	}
}

func TestGetEventsOutlivesWriteTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewDiscardLogger()
	documents := stores.NewDocumentStore(logger)
	broadcaster := messaging.NewSSEBroadcaster(logger)
	documents.OnReplace(broadcaster.BroadcastContentUpdated)

	r := gin.New()
	r.GET("/events", NewEventsHandlers(broadcaster, documents, logger).GetEvents)
	srv := httptest.NewUnstartedServer(server.WithResponseController(r))
	srv.Config.WriteTimeout = 300 * time.Millisecond
	srv.Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/events")
	if err != nil {
		t.Fatalf("GET /events: %v", err)
	}
	defer resp.Body.Close()

	lines := make(chan string, 16)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for broadcaster.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(2 * srv.Config.WriteTimeout)
	documents.Replace(content.EmptyDocument(), "admin")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("stream closed before content_updated arrived")
			}
			if line == "event: content_updated" {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for content_updated")
		}
	}
}
