// Package layout recovers flow layout for containers whose children are only
// described as positioned boxes.
//
// # Inference
//
// [Infer] looks at the already-built children of a container without a
// declared flow and searches for the largest group of siblings that share an
// x coordinate (a column) or a y coordinate (a row). The winning group is
// turned into a flex flow: the container gets display/flex-direction and a
// padding equal to the group's minimum offsets, and every member after the
// first gets a margin equal to its distance from the previous member.
// Everything that is not part of the flow and does not sit at the origin is
// positioned absolutely at its original coordinates, and the container
// becomes the positioning context.
//
// Group selection is deliberately literal: children are examined in order,
// the x-group before the y-group of each child, and a group only replaces
// the current best when it is strictly larger. Among equally sized groups
// the first one found wins.
//
// Children that already carry position: absolute (for example from the
// host's base style) are left untouched and never take part in a group.
//
// # Declared Flow
//
// [Declared] translates a container's own auto-layout declaration into flex
// properties. Alignment values without a flex keyword produce no property.
package layout
