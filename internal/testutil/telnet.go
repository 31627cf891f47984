// Package testutil provides helpers for exercising the Telnet front end over a
// real TCP connection.
package testutil

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/ttkcalc/internal/config"
	"github.com/cory-johannsen/ttkcalc/internal/frontend/telnet"
)

// DefaultTimeout bounds every read performed by Command.
const DefaultTimeout = 2 * time.Second

// StartAcceptor serves handler on a random loopback port and returns the
// listening address. The acceptor is stopped on test cleanup.
//
// Postcondition: Returns a "host:port" address that accepts connections, or
// fails the test.
func StartAcceptor(t *testing.T, handler telnet.SessionHandler) string {
	t.Helper()
	cfg := config.TelnetConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	acc := telnet.NewAcceptor(cfg, handler, zaptest.NewLogger(t))
	go func() { _ = acc.ListenAndServe() }()
	t.Cleanup(acc.Stop)

	deadline := time.After(2 * time.Second)
	for !acc.IsRunning() || acc.Addr() == "" {
		select {
		case <-deadline:
			t.Fatal("acceptor did not start in time")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	return acc.Addr()
}

// TelnetClient is a line-oriented test client.
type TelnetClient struct {
	conn   net.Conn
	reader *bufio.Reader
	t      *testing.T
}

// NewTelnetClient dials the given address and returns a test client.
//
// Precondition: addr must be a valid "host:port" string with a listening server.
// Postcondition: Returns a connected TelnetClient or fails the test.
func NewTelnetClient(t *testing.T, addr string) *TelnetClient {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("connecting to %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return &TelnetClient{conn: conn, reader: bufio.NewReader(conn), t: t}
}

// ReadUntil reads until substr appears in the output, ignoring ANSI styling.
// It returns everything read, styling removed.
//
// Precondition: substr must be non-empty.
// Postcondition: Returns output containing substr, or fails on timeout.
func (c *TelnetClient) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	var buf strings.Builder
	tmp := make([]byte, 1024)
	for {
		n, err := c.reader.Read(tmp)
		if n > 0 {
			buf.Write(tmp[:n])
			if plain := telnet.StripANSI(buf.String()); strings.Contains(plain, substr) {
				return plain
			}
		}
		if err != nil {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, buf.String(), err)
		}
	}
}

// Send writes a line of text to the server, appending \r\n.
//
// Postcondition: text + \r\n is written to the connection.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Command sends text and returns the output up to the next prompt.
func (c *TelnetClient) Command(text, prompt string) string {
	c.t.Helper()
	c.Send(text)
	return c.ReadUntil(prompt, DefaultTimeout)
}

// Close closes the underlying connection.
func (c *TelnetClient) Close() {
	_ = c.conn.Close()
}
