// Package style holds the ordered property maps attached to styled nodes and
// the formatting rules used when they are written out as stylesheet text.
//
// A [Map] keeps insertion order so that emitted declarations are stable
// across runs. Property names are stored dash-cased: setting "marginTop"
// and "margin-top" addresses the same entry.
//
// [Normalize] is the post-pass applied to a complete stylesheet: it unwraps
// host variable references that carry no variable name ("var(--, #fff)" ->
// "#fff") and dash-cases any camelCase property token. It is idempotent.
//
// [FillColor] converts a solid paint into a CSS color value. Gradients and
// other paint types yield "" and the caller emits no property.
package style
