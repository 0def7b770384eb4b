package viz

import "github.com/itohio/slam/pkg/geometry"

// GraphType tags how a DataPoint should be rendered.
type GraphType int

const (
	Scatter GraphType = iota
	Heatmap
)

// Existence tags whether a DataPoint survives a DELETE_TEMPORARY_DATA
// control message.
type Existence int

const (
	Permanent Existence = iota
	Temporary
)

// PathID groups scatter points belonging to the same rendered path or
// history trail.
type PathID int

const (
	NoPath PathID = iota
	RobotHistory
	RobotPathPlan
)

// Color is an RGBA color in [0,1], matching the source's color tuples.
type Color struct {
	R, G, B, A float64
}

var (
	ColorObservation = Color{0.1, 0.2, 0.9, 0.3}
	ColorPosition    = Color{0.9, 0.2, 0.1, 0.3}
	ColorFrontier    = Color{0.2, 0.8, 0.2, 0.5}
	ColorPathPlan    = Color{1.0, 0.6, 0.0, 0.3}
	ColorPathGoal    = Color{1.0, 0.6, 0.0, 1.0}
)

// DataPoint is a single tagged scatter record on the visualization
// channel.
type DataPoint struct {
	Location  geometry.Point
	Color     Color
	GraphType GraphType
	PathID    PathID
	PathStyle string
	Existence Existence
}

// NewDataPoint builds a permanent scatter DataPoint with no path
// association, the common case for raw observation/pose points.
func NewDataPoint(location geometry.Point, color Color) DataPoint {
	return DataPoint{Location: location, Color: color, GraphType: Scatter, Existence: Permanent}
}

// HeatmapPoint is a 2-D grid of weights anchored at Origin, used to
// render occupancy predictions.
type HeatmapPoint struct {
	Origin geometry.Point
	Grid   [][]float64
}

// ControlKind tags a non-data control message on the visualization
// channel.
type ControlKind int

const (
	DeleteTemporaryData ControlKind = iota
)

// ControlMessage clears all TEMPORARY scatter and temporary path
// entries when Kind is DeleteTemporaryData.
type ControlMessage struct {
	Kind ControlKind
}
