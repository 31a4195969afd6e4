// Package pkg provides the core libraries for tagcloud, a tag-cloud layout
// engine and renderer.
//
// # Overview
//
// Tagcloud places rectangular tags of varying size around a fixed center so
// that none overlap and the cloud stays compact. The pkg directory is
// organized into three areas:
//
//  1. [cloud] - The placement engine (geometry, spiral search, spatial index)
//  2. [sizes], [io], [render] - Inputs and outputs around the engine
//  3. [pipeline], [cache], [server] - Orchestration, caching and the HTTP API
//
// # Architecture
//
// The typical data flow through tagcloud:
//
//	Size source (random sizes, explicit sizes, words of a text)
//	         ↓
//	    [sizes] package (labels + rectangle sizes)
//	         ↓
//	    [cloud] package (place each rectangle around the center)
//	         ↓
//	    [io] package (layout document, layout.json)
//	         ↓
//	    [render] package (SVG, PNG, PDF, DOT, JSON)
//
// # Quick Start
//
// Place a handful of tags and render them to SVG:
//
//	import (
//	    "github.com/matzehuels/tagcloud/pkg/cloud"
//	    "github.com/matzehuels/tagcloud/pkg/io"
//	    "github.com/matzehuels/tagcloud/pkg/render/sink"
//	    "github.com/matzehuels/tagcloud/pkg/sizes"
//	)
//
//	// 1. Pick sizes
//	entries, _ := sizes.Random{
//	    Count: 50,
//	    Min:   cloud.Size{Width: 20, Height: 10},
//	    Max:   cloud.Size{Width: 80, Height: 30},
//	    Seed:  7,
//	}.Sizes()
//
//	// 2. Place them
//	l := cloud.New(cloud.Point{X: 0, Y: 0})
//	rects, _ := l.PlaceAll(sizes.SizesOf(entries))
//
//	// 3. Build a document and render it
//	doc := io.NewDocument(l.Center(), entries, rects)
//	svg := sink.RenderSVG(doc)
//
// The [pipeline] package wraps these steps, adds validation and caching, and
// is shared by the CLI and the HTTP server.
//
// # Main Packages
//
// [cloud] - Geometry types (Point, Size, Rect), the Layouter and its search
// components: prober (directions), tracer (rays) and resolver (corner
// orientations). A grid index keeps overlap checks fast on large clouds.
//
// [sizes] - Size sources. Random draws sizes from a seeded generator, Explicit
// parses "WxH" lists and Words counts word frequencies in a text and measures
// each label with the embedded font.
//
// [fonts] - The typeface used to measure and draw labels.
//
// [io] - The layout document and its JSON import and export.
//
// [render/sink] - Output formats. [render/styles] decides colors and text.
//
// [render] - Conversion helpers (SVG to PDF/PNG).
//
// [pipeline] - Options, config files, the Runner (layout → render with
// caching) and format validation.
//
// [cache] - Content-addressed caching with file, Redis, MongoDB and no-op
// backends.
//
// [server] - The HTTP API served by "tagcloud serve".
//
// [observability] - Hooks around layout and render operations.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/cloud/...              # Specific package
//	go test -run Example ./pkg/cloud     # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [cloud]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cloud
// [sizes]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/sizes
// [fonts]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/fonts
// [io]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/errors
package pkg
