package buffer

// Pos is a 0-based (row, col) position; Col counts runes.
type Pos struct {
	Row int
	Col int
}

// Span is a half-open run of rune offsets [Start, End) with Start <= End.
type Span struct {
	Start int
	End   int
}

// spanOf orders a and b into a Span.
func spanOf(a, b int) Span {
	if a > b {
		a, b = b, a
	}
	return Span{Start: a, End: b}
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) IsEmpty() bool { return s.End <= s.Start }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
