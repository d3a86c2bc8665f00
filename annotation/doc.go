// Package annotation implements the range-annotation model behind the
// annotate widget.
//
// A Store holds one version of a base text and the set of formatting ranges
// applied to it. Offsets are 0-based rune offsets and ranges are half-open:
// [Start, End). Two ranges of the same Kind never overlap; ranges of
// different kinds may overlap freely.
package annotation
