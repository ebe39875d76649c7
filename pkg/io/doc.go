// Package io reads design documents and writes generated artifacts.
//
// # Overview
//
// A document is a forest of design nodes exported from a design tool,
// together with an optional selection. framecode accepts documents as JSON
// or YAML; the format is chosen from the file extension (.json, .yaml,
// .yml) or explicitly by the caller.
//
// # Document Format
//
//	{
//	  "name": "login",
//	  "parent_id": "0:1",
//	  "selection": ["1:1"],
//	  "nodes": [
//	    {
//	      "id": "1:1", "type": "FRAME", "width": 320, "height": 200,
//	      "children": [
//	        {"id": "1:2", "type": "RECTANGLE", "width": 10, "height": 10,
//	         "fills": [{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}}]},
//	        {"id": "1:3", "type": "TEXT", "y": 20, "width": 80, "height": 16,
//	         "text": {"characters": "Sign in", "font_family": "Inter", "font_size": 14}}
//	      ]
//	    }
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - id: Host node id, unique within the document
//   - type: Host node type (FRAME, INSTANCE, COMPONENT, GROUP, RECTANGLE,
//     TEXT; anything else is accepted and dropped during conversion)
//
// Optional:
//   - x, y, width, height: Box relative to the parent's origin
//   - opacity, corner_radius, fills
//   - layout: Declared flow (mode, primary_axis_align, counter_axis_align,
//     padding_*, item_spacing)
//   - text: Text content and font (TEXT nodes)
//   - css: Host-computed style declarations; key order is preserved
//   - plugin_data: namespace → key → value
//
// Paint opacity and color alpha default to 1; paints are visible unless
// "visible": false is given.
//
// # Selection
//
// When "selection" lists node ids, [Document.Select] looks them up anywhere
// in the tree and derives the parent id from the first selected node. An
// empty selection selects every top-level node.
//
// # Artifacts
//
// [WriteArtifacts] writes the rendered markup and stylesheet next to each
// other as <base>.<markup ext> and <base>.<stylesheet ext>.
package io
