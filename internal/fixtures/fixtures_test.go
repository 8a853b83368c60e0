package fixtures

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestRouter_Pages(t *testing.T) {
	srv := httptest.NewServer(Router())
	defer srv.Close()

	cases := []struct {
		path   string
		marker string
	}{
		{"/static", `id="box"`},
		{"/animated", "animation: shake"},
		{"/paused", "animation-play-state: paused"},
		{"/transition", "transition: left 1.5s"},
		{"/delayed", "setTimeout"},
	}

	for _, c := range cases {
		body := get(t, srv.URL+c.path)
		if !strings.Contains(body, c.marker) {
			t.Errorf("%s: body does not contain %q", c.path, c.marker)
		}
	}
}

func TestRouter_DelayedParam(t *testing.T) {
	srv := httptest.NewServer(Router())
	defer srv.Close()

	body := get(t, srv.URL+"/delayed?delay=1500")
	if !strings.Contains(body, "}, 1500)") {
		t.Errorf("delay parameter not injected: %s", body)
	}

	// Bogus values fall back to the default.
	body = get(t, srv.URL+"/delayed?delay=bogus")
	if !strings.Contains(body, "}, 2000)") {
		t.Errorf("default delay not applied: %s", body)
	}
}

func TestStart(t *testing.T) {
	srv, err := Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Close()

	if !strings.HasPrefix(srv.URL, "http://127.0.0.1:") {
		t.Errorf("URL = %q, want loopback address", srv.URL)
	}
	body := get(t, srv.URL+"/static")
	if !strings.Contains(body, "ready") {
		t.Errorf("static page body = %q", body)
	}
}
