// internal/fetch/client_test.go
package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient() *Client {
	return NewClient(ClientConfig{RateLimit: 1000, RateBurst: 1000})
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	body, err := testClient().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if body != "<html><body>ok</body></html>" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchSetsBrowserHeaders(t *testing.T) {
	var gotUA, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
	}))
	defer server.Close()

	if _, err := testClient().Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if gotUA == "" {
		t.Error("no User-Agent sent")
	}
	if gotLang != "en-AU,en;q=0.5" {
		t.Errorf("Accept-Language = %q", gotLang)
	}
}

func TestFetchUserAgentRotation(t *testing.T) {
	client := NewClient(ClientConfig{
		RateLimit:  1000,
		RateBurst:  1000,
		UserAgents: []string{"agent-a", "agent-b"},
	})

	var agents []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents = append(agents, r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	for i := 0; i < 3; i++ {
		if _, err := client.Fetch(context.Background(), server.URL); err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
	}

	want := []string{"agent-a", "agent-b", "agent-a"}
	for i, ua := range want {
		if agents[i] != ua {
			t.Errorf("request %d used %q, want %q", i, agents[i], ua)
		}
	}
}

func TestFetchUpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := testClient().Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	fe, ok := AsError(err)
	if !ok {
		t.Fatalf("err is %T, want *Error", err)
	}
	if fe.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", fe.StatusCode)
	}
	if fe.URL != server.URL {
		t.Errorf("URL = %q, want %q", fe.URL, server.URL)
	}
}

func TestFetchMalformedURL(t *testing.T) {
	tests := []string{"", "not-a-url", "/relative/path", "http://"}

	for _, target := range tests {
		_, err := testClient().Fetch(context.Background(), target)
		if err == nil {
			t.Errorf("Fetch(%q) succeeded, want error", target)
			continue
		}
		fe, ok := AsError(err)
		if !ok {
			t.Errorf("Fetch(%q) err is %T, want *Error", target, err)
			continue
		}
		if fe.StatusCode != 0 {
			t.Errorf("Fetch(%q) StatusCode = %d, want 0", target, fe.StatusCode)
		}
	}
}

func TestFetchSingleAttemptByDefault(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := testClient().Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 500 response")
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("server hit %d times, want exactly 1", n)
	}
}

func TestFetchRetriesWhenConfigured(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		RateLimit:     1000,
		RateBurst:     1000,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	})

	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if body != "recovered" {
		t.Errorf("body = %q", body)
	}
	if n := atomic.LoadInt64(&hits); n != 3 {
		t.Errorf("server hit %d times, want 3", n)
	}
}

func TestFetchBodyCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 100; i++ {
			w.Write([]byte("0123456789"))
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{RateLimit: 1000, RateBurst: 1000, MaxBodyBytes: 64})

	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(body) != 64 {
		t.Errorf("body length = %d, want capped at 64", len(body))
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want bool
	}{
		{"throttled", &Error{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &Error{StatusCode: http.StatusBadGateway}, true},
		{"not found", &Error{StatusCode: http.StatusNotFound}, false},
		{"transport", &Error{Cause: context.DeadlineExceeded}, true},
		{"malformed", &Error{Message: "malformed or non-absolute URL"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.err); got != tt.want {
				t.Errorf("retryable() = %v, want %v", got, tt.want)
			}
		})
	}
}
