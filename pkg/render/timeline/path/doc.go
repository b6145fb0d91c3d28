// Package path builds vector paths as structured command lists.
//
// Paths are assembled from [MoveTo], [LineTo], [CubicTo] and [Close]
// commands with explicit coordinates and only become markup when
// [Path.SVG] serializes them for a d attribute. [Through] fits the smooth
// curve used for timeline capsules; [Polyline] is its straight-edged
// counterpart.
package path
