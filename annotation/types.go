package annotation

import "fmt"

// Range is a typed half-open interval [Start, End) over the store text.
type Range struct {
	Start int
	End   int
	Kind  Kind
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Overlaps reports whether the spans of r and o intersect. Kind is ignored.
func (r Range) Overlaps(o Range) bool {
	return !(r.End <= o.Start || r.Start >= o.End)
}

// Intersects reports whether r intersects the half-open span [start, end).
func (r Range) Intersects(start, end int) bool {
	return r.Overlaps(Range{Start: start, End: end})
}

// Contains reports whether the rune at offset lies inside r.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Validate checks 0 <= Start < End <= textLen and that Kind is known.
func (r Range) Validate(textLen int) error {
	if r.Start < 0 || r.End > textLen || r.Start >= r.End || !r.Kind.Valid() {
		return &RangeError{Range: r, TextLen: textLen}
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("%s[%d,%d)", r.Kind, r.Start, r.End)
}

// Less orders ranges by (Start, End, Kind).
func Less(a, b Range) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	return a.Kind < b.Kind
}
