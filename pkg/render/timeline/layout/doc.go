// Package layout computes the geometry of a snake timeline.
//
// A snake gives every century its own horizontal row. Rows alternate
// direction and are joined at their ends by semicircular turns, so the whole
// range reads as one continuous path:
//
//	row 0  1000 ────────────────────────────╮
//	row 1  ╭────────────────────────── 1100 ╯
//	row 2  ╰ 1200 ──────────────────────────╮
//
// A [Layout] is derived once from [Params] by [New] and never changes. It
// maps years to canvas coordinates with [Layout.Point] and turns year ranges
// into ordered point sequences with [Layout.Sample]. Part of every century is
// spent on the turn: [Layout.LinearYears] years run along the straight
// segment, the rest sweep the semicircle of radius [Layout.CentreRadius].
//
// # Offsets
//
// Point and Sample take an offset that selects a parallel track. The track is
// displaced by offset * [Params.TrackSpacing] along the left-hand normal of
// the direction of travel. With the default spacing of zero every track
// coincides with the centerline.
//
// # Domain
//
// Years before the epoch or after [Layout.LastYear] return a
// YEAR_OUT_OF_RANGE error from [github.com/matzehuels/timesnake/pkg/errors].
package layout
