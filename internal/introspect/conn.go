package introspect

import (
	"bufio"
	"net"
	"time"

	"github.com/uiprobe/uiprobe/internal/protocol"
)

// maxFrameBytes bounds a single request line.
const maxFrameBytes = 1 << 20

// handleConn runs the request/reply loop for one accepted connection.
// Requests on a single connection are strictly ordered: the reply for
// request N is written before request N+1 is read. A malformed line or
// I/O error ends only this connection; the peer gets no error frame.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameBytes)

	for scanner.Scan() {
		req, err := protocol.DecodeRequest(scanner.Bytes())
		if err != nil {
			s.log.Warn().Err(err).Msg("dropping connection on malformed request")
			return
		}

		reply := make(chan protocol.Response, 1)
		s.bridge.submit(pending{req: req, reply: reply})

		var resp protocol.Response
		timer := time.NewTimer(s.opts.ReplyTimeout)
		select {
		case resp = <-reply:
			timer.Stop()
		case <-timer.C:
			// Correlation is externally observable, so the synthesized
			// timeout response carries the original request id. A late
			// handler result lands in the abandoned buffer and is lost.
			resp = protocol.Response{ID: req.ID, Result: protocol.Err("Request timeout")}
		}

		if err := protocol.WriteLine(conn, resp); err != nil {
			s.log.Warn().Err(err).Msg("write response")
			return
		}
	}

	if err := scanner.Err(); err != nil {
		s.log.Warn().Err(err).Msg("connection read")
	}
}
