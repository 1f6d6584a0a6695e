// Package scenario loads grid, target and agent layouts from YAML.
//
// A scenario file looks like:
//
//	name: wall-with-gap
//	size: [100, 100]        # [w, h] for 2D, [w, h, d] for 3D
//	target: [31, 10]
//	strategy: priority      # or fifo
//	ticks: 400
//	obstacles:
//	  - origin: [40, 0]     # a box; extent defaults to a single cell
//	    extent: [3, 60]
//	  - origin: [41, 60]
//	    clear: true         # carve a free cell back out
//	agents:
//	  - [67, 30]
//
// Obstacles are applied in file order, so later entries override earlier ones.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Sentinel errors for scenario validation.
var (
	// ErrBadSize indicates size has neither 2 nor 3 components.
	ErrBadSize = errors.New("scenario: size must have 2 or 3 components")
	// ErrBadCoord indicates a coordinate whose arity does not match size.
	ErrBadCoord = errors.New("scenario: coordinate arity does not match size")
	// ErrBadTicks indicates a negative tick count.
	ErrBadTicks = errors.New("scenario: ticks must be non-negative")
	// ErrUnknownStrategy indicates a strategy other than "priority" or "fifo".
	ErrUnknownStrategy = errors.New("scenario: unknown strategy")
)

// Scenario is one grid layout with a target and agent start positions.
type Scenario struct {
	Name      string     `yaml:"name"`
	Size      []int      `yaml:"size"`
	Target    []int      `yaml:"target"`
	Strategy  string     `yaml:"strategy"`
	Ticks     int        `yaml:"ticks"`
	Obstacles []Obstacle `yaml:"obstacles"`
	Agents    [][]int    `yaml:"agents"`
}

// Obstacle is an axis-aligned box of cells set to blocked, or to free when
// Clear is true.
type Obstacle struct {
	Origin []int `yaml:"origin"`
	Extent []int `yaml:"extent"` // empty means a single cell
	Clear  bool  `yaml:"clear"`
}

// Default returns the embedded wall-with-gap scenario.
func Default() (*Scenario, error) {
	return Parse(defaultsYAML)
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Dims returns the dimensionality implied by Size.
func (s *Scenario) Dims() int { return len(s.Size) }

// Validate checks arities and the strategy name. Coordinates are not
// range-checked here: obstacle boxes are clamped by the grid and a bad
// target is rejected by field.Build.
func (s *Scenario) Validate() error {
	dims := s.Dims()
	if dims != 2 && dims != 3 {
		return fmt.Errorf("%w: got %d", ErrBadSize, dims)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("%w: got %d", ErrBadTicks, s.Ticks)
	}
	if len(s.Target) != dims {
		return fmt.Errorf("%w: target %v", ErrBadCoord, s.Target)
	}
	for i, o := range s.Obstacles {
		if len(o.Origin) != dims {
			return fmt.Errorf("%w: obstacle %d origin %v", ErrBadCoord, i, o.Origin)
		}
		if len(o.Extent) != 0 && len(o.Extent) != dims {
			return fmt.Errorf("%w: obstacle %d extent %v", ErrBadCoord, i, o.Extent)
		}
	}
	for i, a := range s.Agents {
		if len(a) != dims {
			return fmt.Errorf("%w: agent %d at %v", ErrBadCoord, i, a)
		}
	}
	if _, err := s.FieldStrategy(); err != nil {
		return err
	}
	return nil
}

// FieldStrategy maps the strategy name to field.Strategy; empty selects the
// field default.
func (s *Scenario) FieldStrategy() (field.Strategy, error) {
	switch s.Strategy {
	case "", "priority":
		return field.StrategyPriority, nil
	case "fifo":
		return field.StrategyFIFO, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s.Strategy)
}

// Grid allocates the grid and applies every obstacle entry in order.
func (s *Scenario) Grid() (*grid.Grid, error) {
	g, err := grid.New(s.Dims(), toCoord(s.Size))
	if err != nil {
		return nil, err
	}
	for _, o := range s.Obstacles {
		extent := grid.XYZ(1, 1, 1)
		if len(o.Extent) != 0 {
			extent = toCoord(o.Extent)
		}
		g.SetRegion(toCoord(o.Origin), extent, !o.Clear)
	}
	return g, nil
}

// TargetCoord returns Target as a grid coordinate.
func (s *Scenario) TargetCoord() grid.Coord { return toCoord(s.Target) }

// AgentStarts returns the agent start positions as grid coordinates.
func (s *Scenario) AgentStarts() []grid.Coord {
	out := make([]grid.Coord, len(s.Agents))
	for i, a := range s.Agents {
		out[i] = toCoord(a)
	}
	return out
}

// toCoord converts a validated 2- or 3-element slice. A 2D size gets
// depth 1; a 2D position gets Z 0.
func toCoord(v []int) grid.Coord {
	c := grid.XY(v[0], v[1])
	if len(v) == 3 {
		c.Z = v[2]
	}
	return c
}
