package agent

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/flowfield/grid"
)

// Lookup is the part of a flow field an agent reads. *field.Field satisfies it.
type Lookup interface {
	// Direction returns the step at c; the zero vector off-grid, at the
	// target, on obstacles and on unreachable cells.
	Direction(c grid.Coord) grid.Coord
}

// Terrain is what Advance validates moves against. *grid.Grid satisfies it.
type Terrain interface {
	grid.Obstacles
	Clamp(c grid.Coord) grid.Coord
}

// Agent is a position holder with a stable identity.
type Agent struct {
	ID  uuid.UUID
	Pos grid.Coord
}

// New creates an agent at pos with a fresh random ID.
func New(pos grid.Coord) *Agent {
	return &Agent{ID: uuid.New(), Pos: pos}
}

// QueryStep returns the field direction at the agent's position.
// It neither moves the agent nor checks bounds or obstacles.
func (a *Agent) QueryStep(f Lookup) grid.Coord {
	return f.Direction(a.Pos)
}

// Advance queries f, adds the step to the position, clamps the result to
// the extent of t and commits it only if it is not an obstacle in t.
// Reports whether the agent moved.
func (a *Agent) Advance(f Lookup, t Terrain) bool {
	step := a.QueryStep(f)
	if step.IsZero() {
		return false
	}
	next := t.Clamp(a.Pos.Add(step))
	if next == a.Pos || t.IsObstacle(next) {
		return false
	}
	a.Pos = next
	return true
}
