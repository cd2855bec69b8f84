// Package introspect implements the in-process introspection/automation
// server. A host application embeds a Server next to its UI loop; an
// external controller then observes and drives the application over a
// line-delimited JSON protocol on a local Unix socket.
//
// The server bridges two execution contexts that must not share mutable
// state: any number of connection goroutines producing requests, and the
// single UI context that owns host state and consumes them. Connection
// goroutines only ever block on their own request's reply, bounded by a
// timeout; the UI context drains the queue exhaustively on each tick and
// never blocks on I/O.
package introspect

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/uiprobe/uiprobe/internal/host"
	"github.com/uiprobe/uiprobe/internal/logger"
)

const (
	// DefaultSocketPath is used when neither Options.SocketPath nor the
	// environment provide one.
	DefaultSocketPath = "/tmp/uiprobe.sock"

	// SocketEnv overrides the default socket path.
	SocketEnv = "UIPROBE_SOCKET"

	defaultReplyTimeout = 10 * time.Second
	defaultPollInterval = 10 * time.Millisecond
)

// ResolveSocketPath picks the socket path: explicit value, then the
// UIPROBE_SOCKET environment variable, then the default.
func ResolveSocketPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(SocketEnv); env != "" {
		return env
	}
	return DefaultSocketPath
}

// Options configures a Server. Zero values select defaults.
type Options struct {
	// SocketPath is the Unix socket to bind. Empty means environment
	// override or DefaultSocketPath.
	SocketPath string

	// ReplyTimeout bounds how long a connection waits for the UI context
	// to answer one request. Default 10s.
	ReplyTimeout time.Duration

	// PollInterval is Serve's drain interval. Default 10ms.
	PollInterval time.Duration
}

// Server accepts controller connections and routes their requests into
// the UI context.
type Server struct {
	host     host.Host
	opts     Options
	bridge   *bridge
	handlers map[string]handlerFunc
	ln       net.Listener
	sockPath string
	log      zerolog.Logger
}

// New creates a Server over the given host capability.
func New(h host.Host, opts Options) *Server {
	if opts.ReplyTimeout <= 0 {
		opts.ReplyTimeout = defaultReplyTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	s := &Server{
		host:   h,
		opts:   opts,
		bridge: &bridge{},
		log:    logger.WithComponent("introspect"),
	}
	s.handlers = s.methodHandlers()
	return s
}

// Start binds the socket and begins accepting connections. A bind
// failure is fatal and returned; after a successful Start the accept
// loop runs until Close. Start does not drain requests: the caller must
// either run Serve or call HandlePending from its own UI tick.
func (s *Server) Start() error {
	path := ResolveSocketPath(s.opts.SocketPath)

	// Remove a stale socket from a previous run.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale socket: %w", err)
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("bind %s: %w", path, err)
	}
	s.ln = ln
	s.sockPath = path

	go s.acceptLoop()

	Logf("Introspection server listening on %s", path)
	s.log.Info().Str("socket", path).Msg("listening")
	return nil
}

// acceptLoop accepts connections until the listener closes. Individual
// accept failures are logged and do not end the loop.
func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Warn().Err(err).Msg("accept")
			continue
		}
		go s.handleConn(conn)
	}
}

// Serve starts the server and runs the reference polling loop: a ticker
// drains all pending requests every PollInterval. The goroutine running
// Serve becomes the single consumer, so a host using Serve must confine
// all state the Host implementation touches to calls made from here.
// Serve returns when ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Close()

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.HandlePending()
		}
	}
}

// Close shuts the listener down and removes the socket file. Connections
// in flight finish their current request and then end on read error.
func (s *Server) Close() error {
	if s.ln == nil {
		return nil
	}
	err := s.ln.Close()
	os.Remove(s.sockPath)
	return err
}

// SocketPath returns the bound socket path, empty before Start.
func (s *Server) SocketPath() string { return s.sockPath }
