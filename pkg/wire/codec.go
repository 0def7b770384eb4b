package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// endFrame is the literal record terminating a SCAN response.
const endFrame = "END"

// EncodeMove renders a MOVE command: drive straight forward by d cm.
func EncodeMove(d float64) string {
	return fmt.Sprintf("MOVE %s", formatFloat(d))
}

// EncodeRotate renders a ROTATE command: rotate in place by theta
// degrees.
func EncodeRotate(theta float64) string {
	return fmt.Sprintf("ROTATE %s", formatFloat(theta))
}

// EncodeRotateSensor renders a ROTATESENSOR command: orient the
// rangefinder head by theta degrees.
func EncodeRotateSensor(theta float64) string {
	return fmt.Sprintf("ROTATESENSOR %s", formatFloat(theta))
}

// EncodeScan renders a SCAN command: perform count equally-spaced
// measurements stepping by precision, in the given direction.
func EncodeScan(precision, count float64, increasing bool) string {
	return fmt.Sprintf("SCAN %s %s %s", formatFloat(precision), formatFloat(count), pythonBool(increasing))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ScanRecord is a single inbound "angle distance [FREE]" measurement
// frame.
type ScanRecord struct {
	Angle    float64
	Distance float64
	// Capped is true when the third token was FREE, meaning the
	// distance denotes a capped range rather than a ranged obstacle.
	Capped bool
}

// DecodeScanFrame parses one inbound record. ok is false (with no
// error) when frame is the literal END terminator.
func DecodeScanFrame(frame string) (rec ScanRecord, ok bool, err error) {
	if frame == endFrame {
		return ScanRecord{}, false, nil
	}

	fields := strings.Fields(frame)
	if len(fields) != 2 && len(fields) != 3 {
		return ScanRecord{}, false, errors.Wrapf(ErrMalformedFrame, "frame %q", frame)
	}

	angle, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return ScanRecord{}, false, errors.Wrapf(ErrMalformedFrame, "angle in %q", frame)
	}
	distance, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return ScanRecord{}, false, errors.Wrapf(ErrMalformedFrame, "distance in %q", frame)
	}

	capped := len(fields) == 3 && fields[2] == "FREE"
	if len(fields) == 3 && fields[2] != "FREE" {
		return ScanRecord{}, false, errors.Wrapf(ErrMalformedFrame, "third token in %q", frame)
	}

	return ScanRecord{Angle: angle, Distance: distance, Capped: capped}, true, nil
}

// DecodeScanResponse parses every frame in a SCAN response up to and
// including its terminating END record.
func DecodeScanResponse(frames []string) ([]ScanRecord, error) {
	var records []ScanRecord
	for _, frame := range frames {
		rec, ok, err := DecodeScanFrame(frame)
		if err != nil {
			return nil, err
		}
		if !ok {
			return records, nil
		}
		records = append(records, rec)
	}
	return nil, errors.Wrap(ErrMalformedFrame, "response missing END terminator")
}
