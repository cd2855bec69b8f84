// Package client implements the controller side of the introspection
// protocol: it dials a running application's socket and issues one
// correlated request per call.
package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/uiprobe/uiprobe/internal/protocol"
)

// DefaultTimeout bounds a single call including dial, write, and reply.
const DefaultTimeout = 15 * time.Second

// Client issues requests over one socket connection. Calls are
// sequential; the server guarantees per-connection reply ordering.
type Client struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
}

// Dial connects to the introspection socket at path.
func Dial(path string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	conn, err := net.DialTimeout("unix", path, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w (is the application running?)", path, err)
	}
	return &Client{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		timeout: timeout,
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Call sends one request and waits for its correlated response. params
// may be nil for parameterless methods. An error result from the server
// is returned as an error; transport and correlation failures likewise.
func (c *Client) Call(method string, params any) (json.RawMessage, error) {
	req := protocol.Request{
		ID:     uuid.NewString(),
		Method: method,
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("encode params: %w", err)
		}
		req.Params = data
	}

	deadline := time.Now().Add(c.timeout)
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	if err := protocol.WriteLine(c.conn, req); err != nil {
		return nil, err
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp protocol.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("response id %q does not match request id %q", resp.ID, req.ID)
	}
	if !resp.Result.IsOK() {
		return nil, fmt.Errorf("%s", resp.Result.ErrMsg())
	}
	return resp.Result.Value(), nil
}

// CallInto is Call followed by unmarshaling the result payload into out.
func (c *Client) CallInto(method string, params, out any) error {
	raw, err := c.Call(method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
