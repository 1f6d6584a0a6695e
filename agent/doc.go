// Package agent holds the minimal consumer of a flow field: a position with
// an identity that asks the field for one step per tick.
//
// QueryStep is a pure lookup. Advance is the integration rule every
// embedding application should share: add the step, clamp to the grid
// extent, and commit only if the destination is not an obstacle. Swarm
// applies Advance to many agents sharing one field.
package agent
