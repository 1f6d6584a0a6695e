package field

import (
	"errors"
	"math"

	"github.com/katalvlaran/flowfield/grid"
)

// Sentinel errors returned by Build and the lookups.
var (
	// ErrNilGrid indicates Build was called with a nil source.
	ErrNilGrid = errors.New("field: grid is nil")

	// ErrBadDims indicates the source reports a dimensionality other than 2 or 3.
	ErrBadDims = errors.New("field: dimensionality must be 2 or 3")

	// ErrEmptyGrid indicates the source reports a non-positive extent.
	ErrEmptyGrid = errors.New("field: grid extent must be positive on every axis")

	// ErrTargetOutOfBounds indicates the target coordinate lies outside the grid.
	ErrTargetOutOfBounds = errors.New("field: target out of bounds")

	// ErrTargetBlocked indicates the target cell is an obstacle.
	ErrTargetBlocked = errors.New("field: target is an obstacle")

	// ErrOutOfBounds indicates a lookup outside the grid extent.
	ErrOutOfBounds = errors.New("field: coordinate out of bounds")

	// ErrNoPath indicates the start cell of Path cannot reach the target.
	ErrNoPath = errors.New("field: no path to target")
)

// Unreachable is the sentinel cost of obstacles and of cells with no route
// to the target.
const Unreachable = math.MaxInt32

// Source is what Build reads from a grid: its shape and obstacle predicate.
// *grid.Grid satisfies it.
type Source interface {
	Dims() int
	Extent() grid.Coord
	IsObstacle(c grid.Coord) bool
}

// Strategy selects the worklist discipline used during cost propagation.
type Strategy int

const (
	// StrategyPriority pops the cheapest pending cell first (min-heap).
	StrategyPriority Strategy = iota
	// StrategyFIFO pops cells in insertion order, re-enqueuing on improvement.
	StrategyFIFO
)

// String returns "priority" or "fifo".
func (s Strategy) String() string {
	switch s {
	case StrategyPriority:
		return "priority"
	case StrategyFIFO:
		return "fifo"
	}
	return "unknown"
}

// Options configures Build.
//
// Strategy – worklist discipline; both produce identical fields.
// Verbose  – if true, Build reports its statistics through Logf.
type Options struct {
	Strategy Strategy
	Verbose  bool
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithStrategy selects the propagation worklist.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithVerbose makes Build log a one-line summary of the propagation.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns the Build defaults:
//   - Strategy: StrategyPriority.
//   - Verbose:  false.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyPriority,
		Verbose:  false,
	}
}

// Stats describes the work done by one Build.
type Stats struct {
	Strategy    Strategy
	Processed   int // worklist pops, stale heap entries excluded
	Relaxations int // successful cost improvements (each one enqueues a cell)
	Reachable   int // cells with a finite cost, target included
	Blocked     int // obstacle cells
}
