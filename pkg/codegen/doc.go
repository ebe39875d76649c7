// Package codegen renders a styled forest into a markup skeleton and a
// stylesheet.
//
// Both artifacts come from a single depth-first traversal ([Walk]), so the
// n-th element opened in the markup always carries the class of the n-th
// rule in the stylesheet. [Generate] builds a structured [Document] from
// that traversal: x/net/html element trees for the markup and douceur rules
// for the stylesheet. [Render] serializes a forest into one of the supported
// dialects:
//
//   - markup: "jsx" (<div className={styles.frame12}>) or "html"
//     (<div class="frame12">)
//   - stylesheet: "less" (child rules nested inside the parent block) or
//     "css" (flat rules)
//
// Text line breaks become <br/> elements; no literal newline ever appears
// inside a text run. Every rendered stylesheet passes through
// [style.Normalize].
package codegen
