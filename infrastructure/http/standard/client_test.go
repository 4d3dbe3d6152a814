package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGet_SendsHeaders(t *testing.T) {
	var gotUA, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("body"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, map[string]string{
		"User-Agent":    "test-agent",
		"Authorization": "oauth token",
	})
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if gotUA != "test-agent" {
		t.Errorf("User-Agent = %q, want test-agent", gotUA)
	}
	if gotAuth != "oauth token" {
		t.Errorf("Authorization = %q, want oauth token", gotAuth)
	}
}

func TestGet_ReturnsBodyAndStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusTeapot {
		t.Errorf("StatusCode() = %d, want 418", resp.StatusCode())
	}

	body, _ := io.ReadAll(resp.Body())
	if string(body) != "short and stout" {
		t.Errorf("body = %q, want short and stout", string(body))
	}
}

func TestGet_NoRetryOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server called %d times, want exactly 1 (no retry)", got)
	}
}

func TestGet_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewStandardHTTPClient(5 * time.Second)
	_, err := client.Get(ctx, server.URL, nil)
	if err == nil {
		t.Error("Get should fail when context is already cancelled")
	}
}

func TestGet_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(5 * time.Second)
	_, err := client.Get(context.Background(), "://bad-url", nil)
	if err == nil {
		t.Error("Get should fail for invalid URL")
	}
}

func TestHeader_CaseInsensitive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.Header("content-type") != "application/json" {
		t.Errorf("Header(content-type) = %q, want application/json", resp.Header("content-type"))
	}
}
