// Package grid provides the dense obstacle mask that flow fields are built from.
//
// What:
//
//   - Grid stores one boolean "blocked" flag per cell of a fixed 2D (W×H) or
//     3D (W×H×D) extent in a flat row-major slice.
//   - Any coordinate outside the extent is reported as an obstacle, so the
//     grid edge behaves like a solid wall.
//   - Obstacles are toggled per cell (SetObstacle) or per axis-aligned box
//     (SetRegion, SetRect, SetCuboid); boxes are clamped to the extent.
//   - Components labels connected free-space regions under full 8/26
//     connectivity.
//
// Both dimensionalities share one representation: a 2D grid is a 3D grid of
// depth 1 whose only valid Z is 0.
//
// Complexity:
//
//   - IsObstacle, InBounds, Index, Coordinate: O(1).
//   - SetRegion: O(volume of the clamped box).
//   - Components: O(W×H×D×d), Memory: O(W×H×D)   (d = 8 or 26).
//
// Errors:
//
//   - ErrBadDims:   dimensionality other than 2 or 3.
//   - ErrBadExtent: a non-positive width, height or depth.
package grid
