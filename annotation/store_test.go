package annotation

import (
	"errors"
	"reflect"
	"testing"
)

func TestStore_Insert_NonOverlappingSameKind(t *testing.T) {
	s := New("hello world")

	inserts := []Range{
		{Start: 0, End: 2, Kind: Bold},
		{Start: 2, End: 5, Kind: Bold},
		{Start: 6, End: 11, Kind: Bold},
	}
	for i, r := range inserts {
		if err := s.Insert(r); err != nil {
			t.Fatalf("insert %v: %v", r, err)
		}
		if got, want := s.Count(), i+1; got != want {
			t.Fatalf("count after %v=%d, want %d", r, got, want)
		}
	}
}

func TestStore_Insert_SameKindOverlapIsNoop(t *testing.T) {
	cases := []struct {
		name string
		a, b Range
	}{
		{name: "partial-left", a: Range{2, 6, Bold}, b: Range{0, 3, Bold}},
		{name: "partial-right", a: Range{2, 6, Bold}, b: Range{5, 8, Bold}},
		{name: "contained", a: Range{2, 6, Italic}, b: Range{3, 4, Italic}},
		{name: "containing", a: Range{2, 6, Italic}, b: Range{0, 8, Italic}},
		{name: "duplicate", a: Range{2, 6, Bold}, b: Range{2, 6, Bold}},
	}

	for _, tc := range cases {
		s := New("abcdefgh")
		if err := s.Insert(tc.a); err != nil {
			t.Fatalf("%s: insert a: %v", tc.name, err)
		}
		before := s.Ranges()

		err := s.Insert(tc.b)
		if !errors.Is(err, ErrOverlap) {
			t.Fatalf("%s: err=%v, want ErrOverlap", tc.name, err)
		}
		var oe *OverlapError
		if !errors.As(err, &oe) || oe.Existing != tc.a || oe.Range != tc.b {
			t.Fatalf("%s: overlap error=%#v, want existing %v", tc.name, oe, tc.a)
		}
		if got := s.Ranges(); !reflect.DeepEqual(got, before) {
			t.Fatalf("%s: ranges=%v, want unchanged %v", tc.name, got, before)
		}
	}
}

func TestStore_Insert_DifferentKindsMayOverlap(t *testing.T) {
	s := New("abcdefgh")
	if err := s.Insert(Range{2, 6, Bold}); err != nil {
		t.Fatalf("insert bold: %v", err)
	}
	if err := s.Insert(Range{4, 8, Italic}); err != nil {
		t.Fatalf("insert italic: %v", err)
	}
	if err := s.Insert(Range{2, 6, Italic}); !errors.Is(err, ErrOverlap) {
		t.Fatalf("err=%v, want ErrOverlap against italic", err)
	}
	if got, want := s.Count(), 2; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
}

func TestStore_Insert_AdjacentIsNotOverlap(t *testing.T) {
	s := New("abcdef")
	if err := s.Insert(Range{0, 3, Bold}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Insert(Range{3, 6, Bold}); err != nil {
		t.Fatalf("adjacent insert: %v", err)
	}
}

func TestStore_Insert_InvalidRange(t *testing.T) {
	s := New("héllo")

	cases := []Range{
		{Start: 2, End: 2, Kind: Bold},
		{Start: 3, End: 1, Kind: Bold},
		{Start: -1, End: 2, Kind: Bold},
		{Start: 0, End: 6, Kind: Bold},
		{Start: 0, End: 2, Kind: Kind(99)},
	}
	for _, r := range cases {
		err := s.Insert(r)
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("insert %v: err=%v, want ErrInvalidRange", r, err)
		}
		var re *RangeError
		if !errors.As(err, &re) || re.TextLen != 5 {
			t.Fatalf("insert %v: range error=%#v, want text length 5", r, re)
		}
	}
	if s.Count() != 0 {
		t.Fatalf("count=%d, want 0", s.Count())
	}

	// Offsets are runes: "héllo" has 5 of them even though it has 6 bytes.
	if err := s.Insert(Range{0, 5, Bold}); err != nil {
		t.Fatalf("full-length insert: %v", err)
	}
}

func TestStore_RemoveOverlapping_AnyKind(t *testing.T) {
	s := New("0123456789")
	for _, r := range []Range{
		{0, 2, Bold},
		{3, 5, Bold},
		{4, 7, Italic},
		{8, 10, Italic},
		{7, 8, Bold},
	} {
		if err := s.Insert(r); err != nil {
			t.Fatalf("insert %v: %v", r, err)
		}
	}

	if got, want := s.RemoveOverlapping(4, 7), 2; got != want {
		t.Fatalf("removed=%d, want %d", got, want)
	}
	want := []Range{{0, 2, Bold}, {7, 8, Bold}, {8, 10, Italic}}
	if got := s.Ranges(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges=%v, want %v", got, want)
	}

	// Touching boundaries do not intersect.
	if got := s.RemoveOverlapping(2, 7); got != 0 {
		t.Fatalf("removed=%d, want 0", got)
	}
}

func TestStore_RemoveOverlapping_ZeroWidthIsNoop(t *testing.T) {
	s := New("abc")
	if err := s.Insert(Range{0, 3, Bold}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := s.RemoveOverlapping(1, 1); got != 0 {
		t.Fatalf("removed=%d, want 0", got)
	}
	if got := s.RemoveOverlapping(2, 1); got != 0 {
		t.Fatalf("removed=%d, want 0", got)
	}
	if s.Count() != 1 {
		t.Fatalf("count=%d, want 1", s.Count())
	}
}

func TestStore_Replace_ClearsAndVersions(t *testing.T) {
	s := New("hello")
	if s.Version() != 0 {
		t.Fatalf("version=%d, want 0", s.Version())
	}
	if err := s.Insert(Range{0, 3, Bold}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Insert(Range{1, 4, Italic}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	s.Replace("hello, world")
	if s.Count() != 0 || s.Ranges() != nil {
		t.Fatalf("ranges=%v, want empty", s.Ranges())
	}
	if got, want := s.Text(), "hello, world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := s.Len(), 12; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if s.Version() != 1 {
		t.Fatalf("version=%d, want 1", s.Version())
	}

	// Replacing an empty store still clears and versions.
	s.Replace("")
	if s.Count() != 0 || s.Version() != 2 {
		t.Fatalf("count=%d version=%d, want 0 and 2", s.Count(), s.Version())
	}
}

func TestStore_Ranges_SortedCopy(t *testing.T) {
	s := New("abcdefgh")
	for _, r := range []Range{{4, 6, Italic}, {0, 2, Italic}, {0, 2, Bold}, {0, 1, Bold}} {
		_ = s.Insert(r)
	}
	got := s.Ranges()
	want := []Range{{0, 2, Bold}, {0, 2, Italic}, {4, 6, Italic}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges=%v, want %v", got, want)
	}

	got[0].Start = 5
	if s.Ranges()[0].Start != 0 {
		t.Fatalf("Ranges must return a copy")
	}
}

func TestStore_KindsAt(t *testing.T) {
	s := New("abcdef")
	_ = s.Insert(Range{0, 4, Italic})
	_ = s.Insert(Range{2, 6, Bold})

	cases := []struct {
		offset int
		want   []Kind
	}{
		{offset: 0, want: []Kind{Italic}},
		{offset: 2, want: []Kind{Bold, Italic}},
		{offset: 4, want: []Kind{Bold}},
		{offset: 6, want: nil},
	}
	for _, tc := range cases {
		if got := s.KindsAt(tc.offset); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("KindsAt(%d)=%v, want %v", tc.offset, got, tc.want)
		}
	}
}
