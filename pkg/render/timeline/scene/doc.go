// Package scene collects the drawable elements of a timeline.
//
// A [Scene] is an ordered buffer of [Stroke], [Circle] and [Text] values
// owned by the caller. A [Renderer] appends to it:
//
//	l := layout.MustNew(layout.DefaultParams())
//	r := scene.NewRenderer(l, styles.Default())
//	s := scene.New()
//	r.Timeline(s, 1066, 2024, l.RowHeight(), 0)
//	r.Marker(s, 1215, 0)
//	r.Label(s, 1215, 0)
//
// Elements are drawn in the order they were added. The scene is handed to a
// sink only once it is complete.
package scene
