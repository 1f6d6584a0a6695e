package agent

import "github.com/katalvlaran/flowfield/grid"

// Swarm is a set of agents sharing one field.
type Swarm struct {
	Agents []*Agent
}

// NewSwarm creates one agent per starting position, in order.
func NewSwarm(starts ...grid.Coord) *Swarm {
	s := &Swarm{Agents: make([]*Agent, 0, len(starts))}
	for _, p := range starts {
		s.Agents = append(s.Agents, New(p))
	}
	return s
}

// Tick advances every agent once and returns how many moved.
func (s *Swarm) Tick(f Lookup, t Terrain) int {
	moved := 0
	for _, a := range s.Agents {
		if a.Advance(f, t) {
			moved++
		}
	}
	return moved
}

// Arrived counts the agents standing on target.
func (s *Swarm) Arrived(target grid.Coord) int {
	n := 0
	for _, a := range s.Agents {
		if a.Pos == target {
			n++
		}
	}
	return n
}

// Run ticks until no agent moves or maxTicks ticks have elapsed, and returns
// the number of ticks performed.
func (s *Swarm) Run(f Lookup, t Terrain, maxTicks int) int {
	for tick := 0; tick < maxTicks; tick++ {
		if s.Tick(f, t) == 0 {
			return tick
		}
	}
	return maxTicks
}
