// Package pathing implements the local obstacle check used by opponent cars
// when the direct route to their target is blocked.
package pathing

import "math"

const (
	defaultSafetyMargin = 20.0
	defaultLateralStep  = 50.0
	defaultForwardStep  = 50.0
)

// Point is a position on the track plane
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Obstacle is a circular blocker
type Obstacle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Planner checks segments against obstacles and tries two fixed sidesteps.
// It holds no state; the zero value is not useful, use NewPlanner.
type Planner struct {
	SafetyMargin float64 `json:"safety_margin"`
	LateralStep  float64 `json:"lateral_step"`
	ForwardStep  float64 `json:"forward_step"`
}

// NewPlanner returns a planner with the default margin and step sizes
func NewPlanner() Planner {
	return Planner{
		SafetyMargin: defaultSafetyMargin,
		LateralStep:  defaultLateralStep,
		ForwardStep:  defaultForwardStep,
	}
}

// Intersects reports whether the segment start→end passes within
// radius+SafetyMargin of the obstacle center.
func (p Planner) Intersects(start, end Point, o Obstacle) bool {
	return distanceToSegment(Point{o.X, o.Y}, start, end) < o.Radius+p.SafetyMargin
}

// Clear reports whether no obstacle intersects start→end
func (p Planner) Clear(start, end Point, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if p.Intersects(start, end, o) {
			return false
		}
	}
	return true
}

// Alternatives returns the sidesteps tried when the direct route is blocked,
// left first.
func (p Planner) Alternatives(current Point) [2]Point {
	return [2]Point{
		{X: current.X - p.LateralStep, Y: current.Y + p.ForwardStep},
		{X: current.X + p.LateralStep, Y: current.Y + p.ForwardStep},
	}
}

// Resolve returns the next waypoint. When the direct route and both
// alternatives are blocked it returns current and ErrPathUnresolved.
// There is no deeper search.
func (p Planner) Resolve(current, target Point, obstacles []Obstacle) (Point, error) {
	if p.Clear(current, target, obstacles) {
		return target, nil
	}

	for _, alt := range p.Alternatives(current) {
		if p.Clear(current, alt, obstacles) {
			return alt, nil
		}
	}

	return current, ErrPathUnresolved
}

// CalculatePath is Resolve without the error: a stalled planner simply
// keeps the car where it is for this tick.
func (p Planner) CalculatePath(current, target Point, obstacles []Obstacle) Point {
	next, _ := p.Resolve(current, target, obstacles)
	return next
}

// distanceToSegment projects pt onto a→b with the parameter clamped to [0, 1]
func distanceToSegment(pt, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return math.Hypot(pt.X-a.X, pt.Y-a.Y)
	}

	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	closestX := a.X + t*dx
	closestY := a.Y + t*dy

	return math.Hypot(pt.X-closestX, pt.Y-closestY)
}
