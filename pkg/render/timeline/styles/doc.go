// Package styles holds the colors, widths and fonts of a timeline drawing
// together with the number and text formatting shared by every output.
//
// [Default] reproduces the reference look. Styles loaded from chart files go
// through [Style.WithDefaults] and [Style.Validate] before use, so every color
// written into markup is known to be safe.
package styles
