package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/unicorn"
	"github.com/etnz/unicorn/renderer"
	"github.com/google/subcommands"
	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type serveCmd struct {
	addr string
	top  int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `ucs serve [-addr <host:port>]

  Serves a server-side rendered preview of the dashboard:

    GET /              dashboard as HTML
    GET /dashboard.md  dashboard as markdown
    GET /api/stats     dashboard metrics and breakdowns as JSON
    GET /healthz       liveness probe

  The filter widgets map to query parameters: industry, country (both
  repeatable) and founded (a from:to year range). For example:

    curl 'localhost:7777/api/stats?industry=Fintech&founded=2010:'
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:7777", "Address to listen on.")
	f.IntVar(&c.top, "top", unicorn.DefaultTopCountries, "Number of countries to keep in the ranking.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	s := &server{set: set, top: c.top}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHTML).Methods(http.MethodGet)
	r.HandleFunc("/dashboard.md", s.handleMarkdown).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	httpServer := &http.Server{
		Addr:         c.addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("Serving %d companies on http://%s\n", set.Len(), c.addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Error: server failed: %v\n", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: shutdown failed: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// server holds the immutable snapshot shared by all requests. The set is
// read-only after load, so handlers need no locking.
type server struct {
	set *unicorn.Set
	top int
}

// dashboardFromQuery maps the filter widgets (query parameters) to a
// computed dashboard view.
func (s *server) dashboardFromQuery(r *http.Request) (*unicorn.Dashboard, error) {
	q := r.URL.Query()
	founded, err := unicorn.ParseYearRange(q.Get("founded"))
	if err != nil {
		return nil, fmt.Errorf("invalid founded parameter: %w", err)
	}
	filter := unicorn.Filter{
		Industries: q["industry"],
		Countries:  q["country"],
		Founded:    founded,
	}
	return unicorn.NewDashboard(s.set, filter, s.top), nil
}

func (s *server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboardFromQuery(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, renderer.DashboardMarkdown(d))
}

// markdownHTML converts the dashboard markdown, tables included, to HTML.
var markdownHTML = goldmark.New(goldmark.WithExtensions(extension.Table))

func (s *server) handleHTML(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboardFromQuery(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body bytes.Buffer
	if err := markdownHTML.Convert([]byte(renderer.DashboardMarkdown(d)), &body); err != nil {
		jsonError(w, http.StatusInternalServerError, fmt.Sprintf("could not render dashboard: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, htmlShell, body.String())
}

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Unicorn Analytics</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.7rem; }
td:last-child { font-family: monospace; }
</style>
</head>
<body>
%s
</body>
</html>
`

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboardFromQuery(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, d)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"companies": s.set.Len(),
	})
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
