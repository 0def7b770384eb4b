package wire

import "errors"

// ErrConnectionClosed is returned by Send/Receive once the underlying
// connection has been torn down, either by the remote end or by Close.
var ErrConnectionClosed = errors.New("wire: connection closed")

// ErrMalformedFrame is returned when an inbound record cannot be parsed
// as an "angle distance [FREE]" scan frame or the literal "END" record.
var ErrMalformedFrame = errors.New("wire: malformed frame")
