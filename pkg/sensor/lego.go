package sensor

import (
	"context"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/wire"
	"github.com/itohio/slam/pkg/world"
)

// Lego is a Driver backed by a wire.Conn to a physical rangefinder
// host.
type Lego struct {
	conn *wire.Conn
}

// NewLego builds a Lego driver over an already-connected conn.
func NewLego(conn *wire.Conn) *Lego {
	return &Lego{conn: conn}
}

// Scan issues a SCAN command and translates the response frames into
// Measurements, relative to the robot's current heading.
func (l *Lego) Scan(ctx context.Context, pose geometry.Pose, viewAngle, precision float64) <-chan Measurement {
	ch := make(chan Measurement)

	go func() {
		defer close(ch)

		start := -viewAngle / 2
		if err := l.conn.Send(wire.EncodeRotateSensor(start)); err != nil {
			log.Error().Err(err).Msg("sensor head positioning failed")
			return
		}

		count := viewAngle / precision
		if err := l.conn.Send(wire.EncodeScan(precision, count, true)); err != nil {
			log.Error().Err(err).Msg("scan command failed")
			return
		}

		records, err := l.conn.ReceiveScanResponse()
		if err != nil {
			log.Error().Err(err).Msg("scan response failed")
			return
		}

		for _, rec := range records {
			select {
			case <-ctx.Done():
				return
			default:
			}

			m := Measurement{
				Polar: geometry.Polar{Angle: geometry.NewAngle(start + rec.Angle), Radius: rec.Distance},
				Type:  world.Obstacle,
			}
			if rec.Capped {
				m.Type = world.Free
			}

			select {
			case ch <- m:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// RotateSensor issues a ROTATESENSOR command, orienting the physical
// rangefinder head.
func (l *Lego) RotateSensor(ctx context.Context, angle geometry.Angle) error {
	return l.conn.Send(wire.EncodeRotateSensor(angle.InDegrees()))
}
