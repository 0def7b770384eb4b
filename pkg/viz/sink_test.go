package viz

import (
	"testing"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestRecorderAccumulatesInOrder(t *testing.T) {
	r := NewRecorder()
	r.Emit(NewDataPoint(geometry.NewPoint(1, 1), ColorObservation))
	r.Emit(NewDataPoint(geometry.NewPoint(2, 2), ColorPosition))
	r.Control(ControlMessage{Kind: DeleteTemporaryData})
	r.EmitPrediction(HeatmapPoint{Origin: geometry.NewPoint(0, 0), Grid: [][]float64{{1}}})

	assert.Len(t, r.Points, 2)
	assert.Equal(t, geometry.NewPoint(1, 1), r.Points[0].Location)
	assert.Len(t, r.Controls, 1)
	assert.Len(t, r.Predictions, 1)
}

func TestNullSinkDiscards(t *testing.T) {
	var s Sink = Null{}
	s.Emit(NewDataPoint(geometry.NewPoint(0, 0), ColorObservation))
	s.EmitPrediction(HeatmapPoint{})
	s.Control(ControlMessage{Kind: DeleteTemporaryData})
}
