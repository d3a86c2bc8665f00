package annotation

import (
	"sort"
	"unicode/utf8"
)

// Store is one version of a base text plus the formatting ranges applied to
// it. The zero value is an empty store over "".
type Store struct {
	text    string
	runeLen int
	version uint64

	ranges []Range
}

func New(text string) *Store {
	return &Store{
		text:    text,
		runeLen: utf8.RuneCountInString(text),
	}
}

func (s *Store) Text() string { return s.text }

// Len returns the text length in runes.
func (s *Store) Len() int { return s.runeLen }

// Version increases every time the text is replaced.
func (s *Store) Version() uint64 { return s.version }

func (s *Store) Count() int { return len(s.ranges) }

// Ranges returns a copy of the current ranges sorted by (Start, End, Kind).
func (s *Store) Ranges() []Range {
	if len(s.ranges) == 0 {
		return nil
	}
	out := append([]Range(nil), s.ranges...)
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Conflict returns the first range of r's kind that overlaps r.
func (s *Store) Conflict(r Range) (Range, bool) {
	for _, existing := range s.ranges {
		if existing.Kind == r.Kind && existing.Overlaps(r) {
			return existing, true
		}
	}
	return Range{}, false
}

// Insert adds r to the store.
//
// It returns a *RangeError if r is not a valid range over the current text
// and an *OverlapError if a range of the same kind overlaps r. In both cases
// the store is unchanged.
func (s *Store) Insert(r Range) error {
	if err := r.Validate(s.runeLen); err != nil {
		return err
	}
	if existing, ok := s.Conflict(r); ok {
		return &OverlapError{Range: r, Existing: existing}
	}
	s.ranges = append(s.ranges, r)
	return nil
}

// RemoveOverlapping removes every range, of any kind, that intersects
// [start, end) and returns how many were removed.
func (s *Store) RemoveOverlapping(start, end int) int {
	if start >= end || len(s.ranges) == 0 {
		return 0
	}
	kept := s.ranges[:0]
	removed := 0
	for _, r := range s.ranges {
		if r.Intersects(start, end) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	clear(s.ranges[len(kept):])
	s.ranges = kept
	return removed
}

// Replace swaps the base text and drops every range: offsets computed against
// the previous text are meaningless for the new one.
func (s *Store) Replace(text string) {
	s.text = text
	s.runeLen = utf8.RuneCountInString(text)
	s.ranges = nil
	s.version++
}

// KindsAt returns the kinds covering the rune at offset, in kind order.
func (s *Store) KindsAt(offset int) []Kind {
	var out []Kind
	for _, k := range Kinds() {
		for _, r := range s.ranges {
			if r.Kind == k && r.Contains(offset) {
				out = append(out, k)
				break
			}
		}
	}
	return out
}
