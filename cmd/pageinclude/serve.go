package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	pageinclude "github.com/alnah/go-pageinclude"
	"github.com/alnah/go-pageinclude/internal/config"
	"github.com/alnah/go-pageinclude/internal/hints"
	"github.com/alnah/go-pageinclude/internal/metrics"
	"github.com/alnah/go-pageinclude/internal/pagedoc"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// pageServer renders one page per request.
type pageServer struct {
	factory  *pageinclude.Factory
	builder  *pagedoc.Builder
	metrics  *metrics.Metrics
	siteRoot string // document root joined with the domain trail
	prefix   string // URL mount point, "/" or "/seg/.../"
	index    string
	logger   *slog.Logger
}

// newRouter wires the page server, static asset directories, metrics and
// health endpoints. Pages and assets live below the domain trail of
// site.scriptPath, so HTTPRoot()+rel always resolves to a served file.
func newRouter(cfg *config.Config, root string, base bool, deps *Dependencies, logger *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	scriptPath := cfg.Site.ScriptPath
	if scriptPath == "" {
		scriptPath = "/"
	}
	trail := pageinclude.DomainTrail(scriptPath)

	opts := contextOptions(cfg, base, deps, logger)
	factory, err := pageinclude.NewFactory(root, scriptPath, includesFrom(cfg), opts...)
	if err != nil {
		return nil, contextError(err)
	}

	s := &pageServer{
		factory:  factory,
		builder:  pagedoc.NewBuilder(),
		metrics:  metrics.New(reg),
		siteRoot: filepath.Join(root, filepath.FromSlash(trail)),
		prefix:   "/" + trail,
		index:    cfg.Server.Page,
		logger:   logger,
	}

	files := http.StripPrefix(strings.TrimSuffix(s.prefix, "/"), http.FileServer(http.Dir(s.siteRoot)))

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	for _, dir := range []string{cfg.Assets.JSDir, cfg.Assets.CSSDir} {
		r.Handle(s.prefix+path.Clean(dir)+"/*", files)
	}
	r.Get(s.prefix+"*", s.handlePage)

	return r, nil
}

// handlePage renders the page named by the request path. The body comes
// from <key>.md in the site root when present.
func (s *pageServer) handlePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := pageinclude.ContextKeyFromPath(strings.TrimPrefix(r.URL.Path, strings.TrimSuffix(s.prefix, "/")), s.index)
	if isFileKey(key) {
		s.logger.Debug("not a page", "path", r.URL.Path)
		http.NotFound(w, r)
		return
	}

	out, status, err := s.render(r, key)
	s.metrics.ObservePage(err, time.Since(start))
	if err != nil {
		s.logger.Warn("page render failed", "key", key, "status", status, "error", err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// isFileKey reports whether the last segment of key still carries an
// extension after script suffixes were dropped. Such requests name files
// like favicon.ico or robots.txt, not pages.
func isFileKey(key string) bool {
	return path.Ext(key) != ""
}

func (s *pageServer) render(r *http.Request, key string) (string, int, error) {
	pc, err := s.factory.ForRequest(r, key)
	if err != nil {
		if errors.Is(err, pageinclude.ErrInvalidContextKey) {
			return "", http.StatusBadRequest, err
		}
		return "", http.StatusInternalServerError, err
	}

	js, css := pc.JS(), pc.CSS()
	s.metrics.AddTags(pageinclude.Script.String(), strings.Count(js, "\n"))
	s.metrics.AddTags(pageinclude.Stylesheet.String(), strings.Count(css, "\n"))

	markdown, err := s.readPage(key)
	if err != nil {
		return "", http.StatusInternalServerError, err
	}

	title := firstHeading(markdown)
	if title == "" {
		title = key
	}

	out, err := s.builder.Build(r.Context(), pagedoc.Page{Title: title, Markdown: markdown, Head: js + css})
	if err != nil {
		return "", http.StatusInternalServerError, err
	}
	return out, http.StatusOK, nil
}

// readPage returns the Markdown body for key, or "" when there is none.
// key has already been validated by the factory.
func (s *pageServer) readPage(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.siteRoot, filepath.FromSlash(key)+".md")) // #nosec G304 -- key is validated
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}

// runServe starts the page server and blocks until ctx is canceled.
func runServe(ctx context.Context, args []string, deps *Dependencies) error {
	f, positional, err := parseServeFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printServeUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgs, positional[0])
	}

	cfg, err := loadConfig(&f.common, deps)
	if err != nil {
		return err
	}
	mergeServeFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	root, err := documentRoot(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(deps.Stderr, &f.common)
	handler, err := newRouter(cfg, root, f.includes.base, deps, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w%s", err, hints.ForListen(cfg.Server.Addr))
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if !f.common.quiet {
		fmt.Fprintf(deps.Stderr, "Serving %s on http://%s\n", root, ln.Addr())
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// mergeServeFlags applies serve flags to cfg (CLI wins).
func mergeServeFlags(f *serveFlags, cfg *config.Config) {
	mergeIncludeFlags(&f.includes, f.fs.Changed, cfg)
	if f.root != "" {
		cfg.Site.DocumentRoot = f.root
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.page != "" {
		cfg.Server.Page = f.page
	}
}
