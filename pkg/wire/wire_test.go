package wire

import (
	"bufio"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommands(t *testing.T) {
	assert.Equal(t, "MOVE 12.5", EncodeMove(12.5))
	assert.Equal(t, "ROTATE -90", EncodeRotate(-90))
	assert.Equal(t, "ROTATESENSOR 45", EncodeRotateSensor(45))
	assert.Equal(t, "SCAN 10 5 True", EncodeScan(10, 5, true))
	assert.Equal(t, "SCAN 10 5 False", EncodeScan(10, 5, false))
}

func TestDecodeScanResponseRoundTrip(t *testing.T) {
	records, err := DecodeScanResponse([]string{"0 30", "10 28.5", "20 27", "END"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ScanRecord{Angle: 0, Distance: 30}, records[0])
	assert.Equal(t, ScanRecord{Angle: 10, Distance: 28.5}, records[1])
	assert.Equal(t, ScanRecord{Angle: 20, Distance: 27}, records[2])
}

func TestDecodeScanFrameCappedRange(t *testing.T) {
	rec, ok, err := DecodeScanFrame("30 100 FREE")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, rec.Capped)
	assert.Equal(t, 100.0, rec.Distance)
}

func TestDecodeScanFrameEndSentinel(t *testing.T) {
	_, ok, err := DecodeScanFrame("END")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeScanResponseMissingEndIsError(t *testing.T) {
	_, err := DecodeScanResponse([]string{"0 30"})
	assert.Error(t, err)
}

func TestDecodeScanFrameMalformed(t *testing.T) {
	_, _, err := DecodeScanFrame("not-a-frame")
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestConnSendReceiveRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	c := &Conn{conn: client, reader: bufio.NewReader(client)}

	go func() {
		buf := make([]byte, 64)
		n, _ := server.Read(buf)
		server.Write(append([]byte{}, buf[:n]...))
	}()

	require.NoError(t, c.Send("MOVE 5"))
	got, err := c.Receive()
	require.NoError(t, err)
	assert.Equal(t, "MOVE 5", got)
}
