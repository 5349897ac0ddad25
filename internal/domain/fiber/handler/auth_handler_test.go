package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newAuthApp(serviceURL string) *fiber.App {
	app := fiber.New()
	NewAuthHandler(serviceURL).RegisterRoutes(app)
	return app
}

func TestAuthHandler_Proxy_MirrorsUpstream(t *testing.T) {
	type captured struct {
		method string
		path   string
		body   string
	}
	var got captured

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = captured{method: r.Method, path: r.URL.RequestURI(), body: string(body)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad credentials"}`))
	}))
	defer upstream.Close()

	app := newAuthApp(upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login?remember=1",
		strings.NewReader(`{"email":"ada@example.com","password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if got.method != http.MethodPost {
		t.Errorf("upstream method = %q, want %q", got.method, http.MethodPost)
	}
	if got.path != "/login?remember=1" {
		t.Errorf("upstream path = %q, want %q", got.path, "/login?remember=1")
	}
	if got.body != `{"email":"ada@example.com","password":"hunter2"}` {
		t.Errorf("upstream body = %q", got.body)
	}

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"error":"bad credentials"}` {
		t.Errorf("body = %q", string(body))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
}

func TestAuthHandler_Proxy_BadGateway(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()

	tests := []struct {
		name       string
		serviceURL string
	}{
		{name: "service URL not configured", serviceURL: ""},
		{name: "upstream unreachable", serviceURL: down.URL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(tt.serviceURL)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadGateway {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadGateway)
			}
		})
	}
}
