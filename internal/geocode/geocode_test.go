package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key")
	c.endpoint = srv.URL
	return c
}

func TestGeocode_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "1 Main St" {
			t.Errorf("address = %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":45.5,"lng":-122.6}}}]}`))
	})

	lat, lng, ok, err := c.Geocode(context.Background(), "1 Main St")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if lat != 45.5 || lng != -122.6 {
		t.Errorf("coordinates = (%v, %v)", lat, lng)
	}
}

func TestGeocode_ZeroResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	_, _, ok, err := c.Geocode(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("Geocode() error = %v", err)
	}
	if ok {
		t.Error("ok = true for a no-match address")
	}
}

func TestGeocode_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"REQUEST_DENIED","results":[]}`))
	})

	if _, _, _, err := c.Geocode(context.Background(), "1 Main St"); err == nil {
		t.Fatal("expected an error for a denied request")
	}
}

func TestGeocode_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, _, _, err := c.Geocode(context.Background(), "1 Main St"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
