package sensor

import (
	"context"
	"testing"
	"time"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/world"
	"github.com/itohio/slam/pkg/worldsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ch <-chan Measurement) []Measurement {
	t.Helper()
	var out []Measurement
	for {
		select {
		case m, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, m)
		case <-time.After(time.Second):
			t.Fatal("timed out draining scan channel")
		}
	}
}

func TestSimulatedScanReportsObstacleAhead(t *testing.T) {
	w := worldsim.New(50, 50, worldsim.Rectangle{MinX: 20, MaxX: 30, MinY: 20, MaxY: 30})
	driver := NewSimulated(w, nil, 0)

	pose := geometry.NewPose(10, 25, 0)
	measurements := drain(t, driver.Scan(context.Background(), pose, 10, 10))

	require.NotEmpty(t, measurements)
	assert.Equal(t, world.Obstacle, measurements[0].Type)
	assert.Greater(t, measurements[0].Polar.Radius, 0.0)
}

func TestSimulatedScanCapsAtMaxDistance(t *testing.T) {
	w := worldsim.New(1000, 1000)
	maxDist := 20.0
	driver := NewSimulated(w, &maxDist, 2)

	pose := geometry.NewPose(10, 10, 0)
	measurements := drain(t, driver.Scan(context.Background(), pose, 10, 10))

	require.NotEmpty(t, measurements)
	for _, m := range measurements {
		assert.Equal(t, world.Free, m.Type)
		assert.InDelta(t, maxDist-2, m.Polar.Radius, 1e-9)
	}
}

func TestSimulatedScanHonorsShutdown(t *testing.T) {
	w := worldsim.New(50, 50)
	driver := NewSimulated(w, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := driver.Scan(ctx, geometry.NewPose(5, 5, 0), 360, 10)
	_, ok := <-ch
	assert.False(t, ok)
}
