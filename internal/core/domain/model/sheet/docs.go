// Package sheet describes a printable document independently of the output format.
//
// All geometry is in millimetres measured from the top-left corner of the page,
// font sizes are in points. Rotations are counter-clockwise in degrees around the
// element anchor, so 270 turns text to read from top to bottom.
package sheet
