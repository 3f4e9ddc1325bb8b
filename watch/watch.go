// Package watch provides a file watcher that serves DOT graphs as SVG via HTTP.
package watch

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures a Watcher.
type Config struct {
	File   string    // DOT file to serve
	Port   string    // HTTP server port (use "0" for a random available port)
	Debug  bool      // enable debug logging
	Stdout io.Writer // output for status messages
	Stderr io.Writer // output for error logging
}

// Watcher watches a DOT file for changes and serves the rendered SVG via HTTP.
// It provides an SSE endpoint that notifies connected browsers when the file changes.
type Watcher struct {
	file     string
	stdout   io.Writer
	logger   *slog.Logger
	server   *http.Server
	fsw      *fsnotify.Watcher
	shutdown chan struct{}
	clients  sync.WaitGroup

	mu   sync.Mutex
	subs map[chan time.Time]struct{}
}

const dotBinary = "dot"

//go:embed index.html
var indexHTML []byte

// New creates a Watcher that serves the given DOT file as SVG on the specified port.
func New(cfg Config) (*Watcher, error) {
	_, err := os.Stat(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("file error: %v", err)
	}
	addr, err := netip.ParseAddrPort("127.0.0.1:" + cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q, must be in range 1-65535", cfg.Port)
	}
	_, err = exec.LookPath(dotBinary)
	if err != nil {
		return nil, fmt.Errorf("dot executable not found, install Graphviz from https://graphviz.org/download/")
	}

	// Watching the containing directory, not the file itself, survives editors that replace a
	// file via rename-on-save rather than writing it in place: an inode-level watch on the file
	// would silently stop firing the moment the original inode is unlinked.
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %v", err)
	}
	if err := fsw.Add(filepath.Dir(cfg.File)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %v", filepath.Dir(cfg.File), err)
	}

	handler := http.NewServeMux()
	server := http.Server{
		Addr:        addr.String(),
		Handler:     handler,
		ReadTimeout: 3 * time.Second,
		IdleTimeout: 120 * time.Second,
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cfg.Stderr, &slog.HandlerOptions{Level: level}))
	wa := &Watcher{
		file:     cfg.File,
		stdout:   cfg.Stdout,
		logger:   logger,
		server:   &server,
		fsw:      fsw,
		shutdown: make(chan struct{}),
		subs:     make(map[chan time.Time]struct{}),
	}
	handler.HandleFunc("GET /", wa.handleIndex)
	handler.HandleFunc("GET /events", wa.handleEvents)
	svgHandler := http.TimeoutHandler(http.HandlerFunc(wa.handleGenerate), 5*time.Second, "failed to generate svg in time")
	handler.Handle("GET /graph", svgHandler)
	handler.Handle("GET /graph.svg", svgHandler)
	return wa, nil
}

// Watch starts the HTTP server and the file watcher, and blocks until the context is cancelled.
func (wa *Watcher) Watch(ctx context.Context) error {
	ln, err := net.Listen("tcp", wa.server.Addr)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(wa.stdout, "watching on http://%s\n", ln.Addr())

	go wa.watchFile()

	go func() {
		<-ctx.Done()
		close(wa.shutdown)
		wa.logger.Debug("shutting down, notifying clients")
		wa.clients.Wait() // no timeout: localhost flushes complete nearly instantly
		wa.fsw.Close()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		if err := wa.server.Shutdown(ctxTimeout); err != nil && !errors.Is(err, context.Canceled) {
			wa.logger.Error("failed to shutdown", "error", err)
		}
	}()

	if err := wa.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// watchFile relays fsnotify events for wa.file to every subscribed SSE client until the watcher is
// closed, which happens when Watch's context is cancelled.
func (wa *Watcher) watchFile() {
	target := filepath.Clean(wa.file)
	for {
		select {
		case event, ok := <-wa.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			wa.logger.Debug("change detected", "file", event.Name, "op", event.Op)
			wa.broadcast(time.Now())
		case err, ok := <-wa.fsw.Errors:
			if !ok {
				return
			}
			wa.logger.Error("file watcher error", "error", err)
		}
	}
}

// broadcast notifies every subscribed SSE handler without blocking: a subscriber busy flushing a
// previous event simply coalesces into the next tick rather than stalling the watch loop.
func (wa *Watcher) broadcast(t time.Time) {
	wa.mu.Lock()
	defer wa.mu.Unlock()
	for ch := range wa.subs {
		select {
		case ch <- t:
		default:
		}
	}
}

func (wa *Watcher) subscribe() chan time.Time {
	ch := make(chan time.Time, 1)
	wa.mu.Lock()
	wa.subs[ch] = struct{}{}
	wa.mu.Unlock()
	return ch
}

func (wa *Watcher) unsubscribe(ch chan time.Time) {
	wa.mu.Lock()
	delete(wa.subs, ch)
	wa.mu.Unlock()
}

func (wa *Watcher) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, err := w.Write(indexHTML)
	if err != nil {
		wa.logger.Error("failed to write index.html", "error", err)
	}
}

func (wa *Watcher) handleEvents(w http.ResponseWriter, r *http.Request) {
	wa.clients.Add(1)
	defer wa.clients.Done()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	wa.logger.Debug("client connected")

	changed := wa.subscribe()
	defer wa.unsubscribe(changed)

	keepAliveTicker := time.NewTicker(15 * time.Second)
	defer keepAliveTicker.Stop()

	for {
		select {
		case <-r.Context().Done():
			wa.logger.Debug("client disconnected")
			return
		case <-wa.shutdown:
			_, _ = fmt.Fprint(w, "event: close\ndata: shutdown\n\n")
			flusher.Flush()
			wa.logger.Debug("closing connection to client")
			return
		case <-keepAliveTicker.C:
			_, _ = w.Write([]byte(": keep-alive\n"))
			wa.logger.Debug("sent keep-alive")
			flusher.Flush()
		case t := <-changed:
			_, _ = fmt.Fprintf(w, "data: %s\nretry: 5000\n\n", t)
			flusher.Flush()
		}
	}
}

func (wa *Watcher) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	err := wa.generate(r.Context(), w)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, err.Error())
		return
	}
}

func (wa *Watcher) generate(ctx context.Context, w io.Writer) error {
	dotSource, err := os.ReadFile(wa.file)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, dotBinary, "-Tsvg", "-Gbgcolor=transparent")
	cmd.Stdin = bytes.NewReader(dotSource)

	var stderr bytes.Buffer
	cmd.Stdout = w
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot command failed: %v\nstderr: %s", err, stderr.String())
	}
	return nil
}
