package rrt

import "errors"

// ErrPlanUnreachable is never returned directly — plan exhaustion is
// reported as a (Point{}, false) result per the planner's total
// failure semantics — but is kept as a sentinel for callers that want
// to log a consistent message.
var ErrPlanUnreachable = errors.New("rrt: unable to find a path within the node budget")
