// Package styles defines how individual tags are drawn.
//
// A [Style] writes SVG fragments for one [Tag] at a time and reports the
// colors it uses, so raster sinks can draw the same tag without parsing SVG.
// Two styles are built in:
//
//   - [Simple]: white boxes with a dark outline and black labels.
//   - [Palette]: filled, rounded boxes colored by a hash of the label, so a
//     word keeps its color across renders.
//
// Use [ByName] to look a style up from configuration.
package styles
