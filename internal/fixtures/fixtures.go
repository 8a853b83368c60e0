// Package fixtures serves small HTML pages with known animation
// behaviour, for demos and end-to-end tests.
package fixtures

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DefaultRevealDelayMs is how long the /delayed page hides its element
// when no delay query parameter is given.
const DefaultRevealDelayMs = 2000

// Router returns the fixture routes:
//
//	/static     element that never moves
//	/animated   element with a running keyframe animation
//	/paused     element with a paused keyframe animation
//	/transition element mid-transition that settles after ~1.5s
//	/delayed    element revealed after ?delay= milliseconds (default 2000)
func Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/static", servePage(staticHTML))
	r.Get("/animated", servePage(animatedHTML))
	r.Get("/paused", servePage(pausedHTML))
	r.Get("/transition", servePage(transitionHTML))
	r.Get("/delayed", func(w http.ResponseWriter, req *http.Request) {
		delay := DefaultRevealDelayMs
		if v := req.URL.Query().Get("delay"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				delay = n
			}
		}
		writeHTML(w, fmt.Sprintf(delayedHTML, delay))
	})
	return r
}

func servePage(html string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeHTML(w, html)
	}
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// Server is a fixture HTTP server bound to a loopback port.
type Server struct {
	URL string
	srv *http.Server
	ln  net.Listener
}

// Start listens on 127.0.0.1:0 and serves the fixture routes.
func Start() (*Server, error) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("fixtures: listen: %w", err)
	}

	srv := &http.Server{Handler: Router()}
	go srv.Serve(ln)

	return &Server{
		URL: "http://" + ln.Addr().String(),
		srv: srv,
		ln:  ln,
	}, nil
}

// Close stops the server.
func (s *Server) Close() error {
	return s.srv.Close()
}
