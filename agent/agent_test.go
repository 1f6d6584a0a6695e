package agent_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowfield/agent"
	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

// constStep returns the same direction everywhere.
type constStep grid.Coord

func (s constStep) Direction(grid.Coord) grid.Coord { return grid.Coord(s) }

func newGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New2D(w, h)
	require.NoError(t, err)
	return g
}

// TestNew_Identity checks each agent gets its own non-nil ID.
func TestNew_Identity(t *testing.T) {
	a := agent.New(grid.XY(1, 2))
	b := agent.New(grid.XY(1, 2))
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, grid.XY(1, 2), a.Pos)
}

// TestQueryStep_ReadsFieldWithoutMoving checks the lookup is side-effect free.
func TestQueryStep_ReadsFieldWithoutMoving(t *testing.T) {
	g := newGrid(t, 10, 10)
	f, err := field.Build(g, grid.XY(5, 5))
	require.NoError(t, err)

	a := agent.New(grid.XY(0, 0))
	assert.Equal(t, grid.XY(1, 1), a.QueryStep(f))
	assert.Equal(t, grid.XY(0, 0), a.Pos)

	off := agent.New(grid.XY(-3, 0))
	assert.True(t, off.QueryStep(f).IsZero())
}

// TestAdvance_Rules covers the integration rule: add, clamp, obstacle check.
func TestAdvance_Rules(t *testing.T) {
	g := newGrid(t, 4, 4)
	g.SetObstacle(grid.XY(2, 1), true)

	cases := []struct {
		name  string
		start grid.Coord
		step  grid.Coord
		moved bool
		want  grid.Coord
	}{
		{"Free", grid.XY(0, 0), grid.XY(1, 1), true, grid.XY(1, 1)},
		{"ZeroStep", grid.XY(1, 1), grid.XY(0, 0), false, grid.XY(1, 1)},
		{"IntoObstacle", grid.XY(1, 1), grid.XY(1, 0), false, grid.XY(1, 1)},
		{"OffEdgeClampedToSelf", grid.XY(0, 3), grid.XY(-1, 0), false, grid.XY(0, 3)},
		{"DiagonalClampedAlongEdge", grid.XY(0, 2), grid.XY(-1, 1), true, grid.XY(0, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := agent.New(tc.start)
			assert.Equal(t, tc.moved, a.Advance(constStep(tc.step), g))
			assert.Equal(t, tc.want, a.Pos)
		})
	}
}

// TestSwarm_ReachesTarget walks several agents around a wall to the target.
func TestSwarm_ReachesTarget(t *testing.T) {
	g := newGrid(t, 12, 8)
	g.SetRect(6, 0, 1, 7, true) // opening at (6,7)
	target := grid.XY(1, 1)

	f, err := field.Build(g, target)
	require.NoError(t, err)

	s := agent.NewSwarm(grid.XY(11, 0), grid.XY(9, 4), grid.XY(0, 7), target)
	require.Len(t, s.Agents, 4)

	ticks := s.Run(f, g, 100)
	assert.Less(t, ticks, 100, "swarm should settle")
	assert.Equal(t, 4, s.Arrived(target))
	assert.Zero(t, s.Tick(f, g), "nobody moves once everyone arrived")
}

// TestSwarm_StrandedAgentStays keeps an agent in a sealed pocket in place.
func TestSwarm_StrandedAgentStays(t *testing.T) {
	g := newGrid(t, 6, 6)
	g.SetRect(3, 0, 1, 6, true)
	f, err := field.Build(g, grid.XY(0, 0))
	require.NoError(t, err)

	s := agent.NewSwarm(grid.XY(5, 5), grid.XY(2, 5))
	s.Run(f, g, 50)
	assert.Equal(t, grid.XY(5, 5), s.Agents[0].Pos)
	assert.Equal(t, grid.XY(0, 0), s.Agents[1].Pos)
	assert.Equal(t, 1, s.Arrived(grid.XY(0, 0)))
}
