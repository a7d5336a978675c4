package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_GetString(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>log</body></html>"))
	}))
	defer server.Close()

	client := NewClient()
	body, err := client.GetString(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetString() error = %v", err)
	}

	if !strings.Contains(body, "log") {
		t.Errorf("GetString() = %q, want page body", body)
	}
	if gotUserAgent != "IncidentLogScraper" {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, "IncidentLogScraper")
	}
}

func TestClient_GetNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Get() should fail on a 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Get() error = %v, want status code included", err)
	}
}

func TestClient_GetCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient()
	if _, err := client.Get(ctx, server.URL); err == nil {
		t.Error("Get() should fail when the context is already cancelled")
	}
}
