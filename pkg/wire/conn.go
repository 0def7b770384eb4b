package wire

import (
	"bufio"
	"context"
	"net"
	"time"

	"github.com/itohio/slam/pkg/logging"
	"github.com/pkg/errors"
)

var log = logging.Named("wire")

const frameDelimiter = 0

// Conn is a NUL-delimited line connection to the remote actuator/sensor
// host: every outbound command and inbound record is terminated by a
// single zero byte rather than a newline.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to addr, retrying every retryInterval until it
// succeeds or ctx is cancelled.
func Dial(ctx context.Context, addr string, retryInterval time.Duration) (*Conn, error) {
	for {
		conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
		if err == nil {
			log.Info().Str("addr", addr).Msg("connection established")
			return &Conn{conn: conn, reader: bufio.NewReader(conn)}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// Send writes message terminated by a NUL byte.
func (c *Conn) Send(message string) error {
	_, err := c.conn.Write(append([]byte(message), frameDelimiter))
	if err != nil {
		return errors.Wrap(ErrConnectionClosed, err.Error())
	}
	return nil
}

// Receive reads up to the next NUL byte and returns it as a string,
// without the delimiter.
func (c *Conn) Receive() (string, error) {
	line, err := c.reader.ReadString(frameDelimiter)
	if err != nil {
		return "", errors.Wrap(ErrConnectionClosed, err.Error())
	}
	return line[:len(line)-1], nil
}

// ReceiveScanResponse reads frames until and including the END
// terminator and decodes them.
func (c *Conn) ReceiveScanResponse() ([]ScanRecord, error) {
	var records []ScanRecord
	for {
		frame, err := c.Receive()
		if err != nil {
			return nil, err
		}
		rec, ok, err := DecodeScanFrame(frame)
		if err != nil {
			return nil, err
		}
		if !ok {
			return records, nil
		}
		records = append(records, rec)
	}
}

// Close tears down the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
