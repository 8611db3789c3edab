// Package scanner reads key events from the matrix scanner's unix socket.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"net"
	"os"
	"path/filepath"
	"strings"
)

const SocketEnv = "KEYMAPD_SCANNER_SOCKET"

var ErrNotRunning = errors.New("scanner might not be running")

type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ReadLine returns the next event line without its trailing newline.
func (c *Client) ReadLine() (string, error) {
	str, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read from scanner socket: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(str, "\n"), "\r"), nil
}

// Connect dials the scanner socket at path, or at SocketPath when path is empty.
func Connect(path string) (*Client, error) {
	if path == "" {
		path = SocketPath()
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w (%w)", path, err, ErrNotRunning)
	}

	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

// SocketPath returns the socket named by KEYMAPD_SCANNER_SOCKET, falling back
// to keymapd/scanner.sock in the XDG runtime directory.
func SocketPath() string {
	if path := os.Getenv(SocketEnv); path != "" {
		return path
	}
	return filepath.Join(xdg.RuntimeDir, "keymapd", "scanner.sock")
}
