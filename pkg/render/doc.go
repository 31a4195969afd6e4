// Package render turns placed tag clouds into images and documents.
//
// # Overview
//
// Rendering is split in two layers:
//
//   - [styles] decides how a single tag looks: its box, colors and label.
//   - [sink] lays a whole [io.Document] onto a canvas and writes it out as
//     SVG, PNG, PDF, JSON or a Graphviz format.
//
// The canvas is the document's bounding box plus a margin, translated so the
// top-left tag corner sits at (margin, margin). Tag coordinates in the output
// are therefore always non-negative, whatever center the layout used.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF with the external rsvg-convert tool (from
// librsvg). PNG output does not need it; the PNG sink rasterizes natively.
//
//	svg := sink.RenderSVG(doc)
//	pdf, err := render.ToPDF(svg)
//
// [styles]: github.com/matzehuels/tagcloud/pkg/render/styles
// [sink]: github.com/matzehuels/tagcloud/pkg/render/sink
// [io.Document]: github.com/matzehuels/tagcloud/pkg/io.Document
package render
