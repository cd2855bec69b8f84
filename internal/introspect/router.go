package introspect

import (
	"github.com/uiprobe/uiprobe/internal/protocol"
)

// handle dispatches one request to its method handler and produces the
// correlated response. Host failures and handler panics are converted to
// error results; nothing propagates into the host's own fault handling.
func (s *Server) handle(req protocol.Request) (resp protocol.Response) {
	resp.ID = req.ID

	defer func() {
		if r := recover(); r != nil {
			resp.Result = protocol.Errf("handler panic: %v", r)
		}
	}()

	h, ok := s.handlers[req.Method]
	if !ok {
		resp.Result = protocol.Errf("Unknown method: %s", req.Method)
		return resp
	}
	resp.Result = h(req.Params)
	return resp
}

// HandlePending drains every request queued at the moment of the call and
// answers each one synchronously. It must be invoked from the single
// goroutine (or UI tick) that owns host state; draining is exhaustive so
// staleness stays bounded without starving the caller's loop.
//
// Hosts with their own cooperative scheduler call this from a recurring
// task; others let Serve run the polling loop.
func (s *Server) HandlePending() {
	for _, p := range s.bridge.drain() {
		// The reply channel is buffered: if the connection already timed
		// out and left, the send completes into the buffer and the
		// response is simply never read.
		p.reply <- s.handle(p.req)
	}
}
