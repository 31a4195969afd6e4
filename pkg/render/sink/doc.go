// Package sink writes tag cloud documents to output formats.
//
// Every sink works on the same canvas: the document's tag bounds grown by a
// margin (see [WithMargin]) and shifted so all coordinates are non-negative.
//
//   - [RenderSVG]: vector output drawn by a [styles.Style].
//   - [RenderPNG]: native rasterization with the embedded Go font; no
//     external tools required. [WithScale] sets the pixel density.
//   - [RenderPDF]: SVG converted with rsvg-convert.
//   - [RenderJSON]: canvas-space tags with their resolved colors, for web
//     front ends that draw the cloud themselves.
//   - [ToDOT] and [RenderGraphviz]: a Graphviz graph whose nodes are pinned
//     at the tag positions, rendered with the nop engine (neato -n).
//
// [styles.Style]: github.com/matzehuels/tagcloud/pkg/render/styles.Style
package sink
