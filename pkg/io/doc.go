// Package io provides JSON import and export for tag cloud layouts.
//
// # Overview
//
// A [Document] is the finished product of the placement engine: the cloud
// center, the bounding box and one [Tag] per placed rectangle, in placement
// order. Documents decouple layout from rendering. The CLI writes one with
// `tagcloud layout`, and any renderer (or external tool) can read it back.
//
// # JSON Format
//
//	{
//	  "id": "6f1c3b1e-...",
//	  "center": {"x": 400, "y": 300},
//	  "bounds": {"x": 310, "y": 250, "width": 180, "height": 96},
//	  "tags": [
//	    {"label": "gopher", "x": 340, "y": 280, "width": 120, "height": 40, "font_size": 32}
//	  ]
//	}
//
// Coordinates are integers; a tag covers [x, x+width) x [y, y+height).
//
// # Import
//
// [ImportJSON] and [ReadJSON] validate what they read: every tag needs a
// positive size and a valid label, and no two tags may overlap. The bounds are
// recomputed from the tags, so a hand-edited document stays consistent.
//
// # Export
//
// [ExportJSON] and [WriteJSON] write indented JSON that round-trips through
// [ReadJSON] unchanged.
package io
