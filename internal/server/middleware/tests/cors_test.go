package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-user-api/internal/server/middleware"
)

func corsServer(t *testing.T, origins []string) *httptest.Server {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(middleware.CORSMiddleware(origins)(next))
	t.Cleanup(srv.Close)
	return srv
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	srv := corsServer(t, []string{"*"})

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("Origin", "http://example.com")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Allow-Origin *, got %q", got)
	}
}

func TestCORSMiddleware_AllowListed(t *testing.T) {
	srv := corsServer(t, []string{"http://allowed.example"})

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("Origin", "http://allowed.example")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://allowed.example" {
		t.Fatalf("expected echoed origin, got %q", got)
	}
}

// Чужой origin не получает разрешающий заголовок
func TestCORSMiddleware_RejectUnlisted(t *testing.T) {
	srv := corsServer(t, []string{"http://allowed.example"})

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("Origin", "http://evil.example")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Allow-Origin, got %q", got)
	}
}

// Preflight завершается сразу, до хендлера
func TestCORSMiddleware_Preflight(t *testing.T) {
	srv := corsServer(t, []string{"*"})

	req, _ := http.NewRequest(http.MethodOptions, srv.URL, nil)
	req.Header.Set("Origin", "http://example.com")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatal("expected Allow-Methods header on preflight")
	}
}
