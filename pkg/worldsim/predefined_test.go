package worldsim

import "testing"

func TestPredefinedFallsBackToEmptyWorld(t *testing.T) {
	s := Predefined(1)
	if s.World.Width != 50 || s.World.Height != 50 || len(s.World.Obstacles) != 0 {
		t.Fatalf("expected empty 50x50 world, got %+v", s.World)
	}
}

func TestPredefinedCorridorWorldMatchesScenario(t *testing.T) {
	s := Predefined(2)
	if len(s.World.Obstacles) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(s.World.Obstacles))
	}
	obs := s.World.Obstacles[0]
	if obs.MinX != 0 || obs.MaxX != 10 || obs.MinY != 20 || obs.MaxY != 39 {
		t.Fatalf("unexpected obstacle: %+v", obs)
	}
}

func TestPredefinedUnknownNumberFallsBackToWorldOne(t *testing.T) {
	s := Predefined(99)
	if len(s.World.Obstacles) != 0 {
		t.Fatalf("expected fallback to empty world, got %+v", s.World)
	}
}
