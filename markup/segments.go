package markup

import "github.com/iw2rmb/annotate/annotation"

// Segment is a maximal run of text covered by the same set of kinds.
type Segment struct {
	Text  string
	Kinds []annotation.Kind // kind table order, no duplicates
}

func (s Segment) Has(k annotation.Kind) bool {
	for _, have := range s.Kinds {
		if have == k {
			return true
		}
	}
	return false
}

// Segments splits text at every range boundary. Adjacent runs always differ
// in their kind sets; an empty text yields no segments.
func Segments(text string, ranges []annotation.Range) []Segment {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	spans := normalizeRanges(ranges, len(runes))
	if len(spans) == 0 {
		return []Segment{{Text: text}}
	}

	offs := boundaries(spans)
	if offs[0] != 0 {
		offs = append([]int{0}, offs...)
	}
	if offs[len(offs)-1] != len(runes) {
		offs = append(offs, len(runes))
	}

	var out []Segment
	for i := 0; i+1 < len(offs); i++ {
		start, end := offs[i], offs[i+1]
		kinds := kindsCovering(spans, start)
		if n := len(out); n > 0 && sameKinds(out[n-1].Kinds, kinds) {
			out[n-1].Text += string(runes[start:end])
			continue
		}
		out = append(out, Segment{Text: string(runes[start:end]), Kinds: kinds})
	}
	return out
}

func kindsCovering(spans []annotation.Range, offset int) []annotation.Kind {
	var kinds []annotation.Kind
	for _, k := range annotation.Kinds() {
		for _, s := range spans {
			if s.Kind == k && s.Contains(offset) {
				kinds = append(kinds, k)
				break
			}
		}
	}
	return kinds
}

func sameKinds(a, b []annotation.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
