// Package scene defines the read-only input model of framecode: a tree of
// positioned rectangular design nodes as exported by a design tool.
//
// # Kinds
//
// Every [Node] carries the raw host [Type] ("FRAME", "TEXT", "VECTOR", ...).
// [Classify] folds it into the closed set of supported kinds:
//
//   - [KindContainer]: FRAME, INSTANCE, COMPONENT, GROUP
//   - [KindRectangle]: RECTANGLE
//   - [KindText]: TEXT
//   - [KindUnsupported]: everything else (dropped from the output tree)
//
// Variant-only fields live behind pointers: a container's declared flow is in
// [Node.Layout], a text node's characters and font in [Node.Text]. Nodes of
// other kinds leave them nil, and the accessor methods return zero values.
//
// # Coordinates
//
// X and Y are relative to the parent's origin. Width and Height are the
// node's own size. No transforms or rotations are modeled.
//
// # Host Data
//
// [Node.CSS] holds the style properties the host already computed for the
// node (border, radius, effects, ...), in host order. [Node.PluginData]
// exposes namespaced custom metadata for future use; the pipeline reads it
// but does not emit it.
package scene
