// Package pkg provides the core libraries for framecode, which turns a
// selection of design nodes into a markup skeleton and a stylesheet.
//
// # Overview
//
// A design tool hands framecode a selection of nodes (frames, groups,
// rectangles, text runs) with absolute geometry. framecode builds a styled
// tree from them, inferring flex layout where none is declared, and
// renders the tree as JSX or HTML plus Less or CSS.
//
// # Architecture
//
// The data flow for one selection:
//
//	Design document / host selection event
//	         ↓
//	    [io] or [host] (decode and select nodes)
//	         ↓
//	    [build] (resolve base styles, add color and font, lay out)
//	         ↓
//	    [codegen] (markup + stylesheet)
//	         ↓
//	    .jsx/.html + .less/.css
//
// [pipeline] orchestrates the two stages and is shared by the CLI, the
// HTTP server and host sessions so that every entry point produces the same
// output.
//
// # Quick Start
//
//	doc, _ := io.ImportDocument("card.json")
//	nodes, _, _ := doc.Select()
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, _ := runner.Execute(ctx, nodes, pipeline.Options{Markup: "jsx", Stylesheet: "less"})
//	fmt.Println(result.Markup)
//	fmt.Println(result.Stylesheet)
//
// # Main Packages
//
// ## Model
//
// [scene] - The input node model: kinds, geometry, fills, declared flow and
// text style.
//
// [style] - Ordered style maps, color conversion and the stylesheet
// normalization pass.
//
// [styled] - The styled tree built for one selection.
//
// ## Stages
//
// [resolve] - Base style resolvers: the host's exported declarations, or a
// geometry-only stand-in.
//
// [layout] - Declared flow translation and flex inference from child
// geometry (row/column clustering, absolute positioning of the rest).
//
// [build] - Tree construction: filtering, class ids, per-kind properties.
//
// [codegen] - Markup and stylesheet generation (JSX, HTML, Less, CSS).
//
// ## Entry Points
//
// [pipeline] - build → render orchestration with options and timing.
//
// [host] - Selection sessions that cancel superseded builds and post
// results to the host UI.
//
// [server] - HTTP and websocket API for design-tool plugins.
//
// ## Support
//
// [io] - JSON/YAML design documents and artifact files.
//
// [config] - TOML configuration file.
//
// [treeviz] - Text and Graphviz views of the styled tree.
//
// [observability] - Hooks for metrics and tracing.
//
// [errors] - Error codes and input validation.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//
// [scene]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/scene
// [style]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/style
// [styled]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/styled
// [resolve]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/resolve
// [layout]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/layout
// [build]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/build
// [codegen]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/codegen
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/pipeline
// [host]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/host
// [server]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/server
// [io]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/config
// [treeviz]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/treeviz
// [observability]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/framecode/pkg/errors
package pkg
