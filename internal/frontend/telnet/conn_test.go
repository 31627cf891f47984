package telnet

import (
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// pipeConn returns a server-side Conn and the client end of an in-memory pipe.
func pipeConn(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		server.Close()
		client.Close()
	})
	return NewConn(server, 2*time.Second, 2*time.Second), client
}

func feed(client net.Conn, data []byte) {
	go func() {
		_, _ = client.Write(data)
	}()
}

func TestReadLine_StripsNegotiation(t *testing.T) {
	conn, client := pipeConn(t)
	feed(client, []byte{IAC, WILL, OptEcho, 'h', 'p', IAC, DO, OptSuppressGoAhead, '\r', '\n'})
	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hp", line)
}

func TestReadLine_SubNegotiation(t *testing.T) {
	conn, client := pipeConn(t)
	feed(client, []byte{IAC, SB, 24, 0, 'x', 't', 'e', 'r', 'm', IAC, SE, 'o', 'k', '\n'})
	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ok", line)
}

func TestReadLine_DropsControlCharacters(t *testing.T) {
	conn, client := pipeConn(t)
	feed(client, []byte("da\x07mage\tatk=1\rnext\n"))
	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "damage\tatk=1", line)
	line, err = conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestReadLine_EOFAfterPartialLine(t *testing.T) {
	conn, client := pipeConn(t)
	go func() {
		_, _ = client.Write([]byte("quit"))
		client.Close()
	}()
	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "quit", line)
	_, err = conn.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_TruncatesLongInput(t *testing.T) {
	conn, client := pipeConn(t)
	feed(client, []byte(strings.Repeat("a", MaxLineLength+100)+"\n"))
	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, MaxLineLength)
}

func TestWriteLine_NormalizesNewlines(t *testing.T) {
	conn, client := pipeConn(t)
	go func() {
		_ = conn.WriteLine("a\nb")
	}()
	buf := make([]byte, 16)
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := io.ReadAtLeast(client, buf, len("a\r\nb\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\r\n", string(buf[:n]))
}

// Property: printable input without IAC is read back unchanged.
func TestPropertyReadLine_PrintablePassThrough(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[ -~]{0,80}`).Draw(rt, "text")
		conn, client := pipeConn(t)
		feed(client, []byte(text+"\r\n"))
		line, err := conn.ReadLine()
		if err != nil {
			rt.Fatalf("ReadLine: %v", err)
		}
		if line != text {
			rt.Fatalf("ReadLine() = %q, want %q", line, text)
		}
	})
}
