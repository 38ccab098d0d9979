package playground

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toastkit-go/toastkit/internal/config"
	"github.com/toastkit-go/toastkit/pkg/middleware"
	"github.com/toastkit-go/toastkit/pkg/pref"
	"github.com/toastkit-go/toastkit/pkg/session"
	"github.com/toastkit-go/toastkit/pkg/toast"
)

//go:embed static
var staticFiles embed.FS

// Server hosts the playground: page SSR, the WebSocket session endpoint,
// static assets, and optionally /metrics.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger

	prefs      pref.Store
	upgrader   websocket.Upgrader
	middleware []session.Middleware
	sessions   prometheus.Gauge
}

// NewServer creates a playground server from the loaded configuration.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		prefs:  pref.NewFileStore(cfg.PrefsFile),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}

	if cfg.Metrics {
		s.middleware = append(s.middleware, middleware.Metrics())
		s.sessions = middleware.SessionGauge()
	}
	if cfg.Tracing {
		s.middleware = append(s.middleware, middleware.OTel())
	}

	return s
}

// Handler returns the playground's HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)

	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	if s.cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // long-lived websocket responses
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("playground listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleIndex serves the page shell with the root component prerendered,
// so the first paint does not wait for the WebSocket.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := session.NewDetached(session.Config{Logger: s.logger})
	defer sess.Close()

	sess.Start()
	sess.MountRoot(s.newApp(sess))

	html, err := s.prerender(sess)
	if err != nil {
		s.logger.Error("prerender failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, html)
}

// handleWS upgrades the connection and runs a live session until the
// client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := session.New(conn, session.Config{
		Logger:     s.logger,
		Middleware: s.middleware,
	})

	store := s.newStore(sess)
	store.Bind(sess)
	defer store.Unbind(sess)

	sess.Start()
	sess.MountRoot(NewApp(sess, sess, store))

	if s.sessions != nil {
		s.sessions.Inc()
		defer s.sessions.Dec()
	}

	sess.ReadLoop()
}

// newApp builds a root component with a session-scoped store.
func (s *Server) newApp(sess *session.Session) *App {
	store := s.newStore(sess)
	store.Bind(sess)
	return NewApp(sess, sess, store)
}

func (s *Server) newStore(sess *session.Session) *toast.Store {
	cfg := toast.DefaultConfig()
	if v := s.cfg.Toast.MaxVisiblePerAnchor; v > 0 {
		cfg.MaxVisiblePerAnchor = v
	}
	if v := s.cfg.Toast.DefaultDuration(); v > 0 {
		cfg.DefaultDuration = v
	}
	if v := s.cfg.Toast.ExitGrace(); v > 0 {
		cfg.ExitGrace = v
	}

	return toast.NewStore(sess,
		toast.WithConfig(cfg),
		toast.WithPrefStore(s.prefs),
		toast.WithLogger(s.logger),
	)
}

// prerender renders the session's root on its own loop, where the tree and
// renderer live.
func (s *Server) prerender(sess *session.Session) (string, error) {
	type result struct {
		html string
		err  error
	}
	ch := make(chan result, 1)
	sess.Dispatch(func() {
		html, err := sess.RenderRoot()
		ch <- result{html, err}
	})

	select {
	case r := <-ch:
		return r.html, r.err
	case <-time.After(time.Second):
		return "", errors.New("prerender timed out")
	}
}

const pageShell = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>toastkit playground</title>
<link rel="stylesheet" href="/static/toastkit.css">
</head>
<body>
<div id="app">%s</div>
<script src="/static/client.js"></script>
</body>
</html>
`
