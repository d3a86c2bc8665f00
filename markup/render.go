package markup

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/iw2rmb/annotate/annotation"
)

// Renderer turns a text and its ranges into markup.
type Renderer struct {
	// Escape escapes markup-significant characters in text runs.
	Escape bool
}

// Render renders with the zero Renderer (no escaping).
func Render(text string, ranges []annotation.Range) string {
	return Renderer{}.Render(text, ranges)
}

func (r Renderer) Render(text string, ranges []annotation.Range) string {
	runes := []rune(text)
	spans := normalizeRanges(ranges, len(runes))
	if len(spans) == 0 {
		return r.run(text)
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(spans)*7)

	var stack []annotation.Range
	pos := 0
	next := 0 // index into spans, sorted by Start
	for _, off := range boundaries(spans) {
		sb.WriteString(r.run(string(runes[pos:off])))
		pos = off

		var reopen []annotation.Range
		stack, reopen = closeAt(&sb, stack, off)

		opens := reopen
		for next < len(spans) && spans[next].Start == off {
			opens = append(opens, spans[next])
			next++
		}
		sortOpens(opens)
		for _, o := range opens {
			writeOpen(&sb, o.Kind)
			stack = append(stack, o)
		}
	}
	sb.WriteString(r.run(string(runes[pos:])))
	return sb.String()
}

func (r Renderer) run(s string) string {
	if !r.Escape || s == "" {
		return s
	}
	return html.EscapeString(s)
}

// closeAt closes every open range ending at off. Ranges opened above the
// lowest of those are closed as well and returned so the caller reopens them.
func closeAt(sb *strings.Builder, stack []annotation.Range, off int) (kept, reopen []annotation.Range) {
	lowest := -1
	for i, o := range stack {
		if o.End == off {
			lowest = i
			break
		}
	}
	if lowest < 0 {
		return stack, nil
	}
	for i := len(stack) - 1; i >= lowest; i-- {
		writeClose(sb, stack[i].Kind)
		if stack[i].End != off {
			reopen = append(reopen, stack[i])
		}
	}
	return stack[:lowest], reopen
}

// sortOpens puts longer ranges outside shorter ones; equal spans follow kind
// table order.
func sortOpens(opens []annotation.Range) {
	sort.SliceStable(opens, func(i, j int) bool {
		if opens[i].End != opens[j].End {
			return opens[i].End > opens[j].End
		}
		if opens[i].Kind != opens[j].Kind {
			return opens[i].Kind < opens[j].Kind
		}
		return opens[i].Start < opens[j].Start
	})
}

func writeOpen(sb *strings.Builder, k annotation.Kind) {
	sb.WriteByte('<')
	sb.WriteString(k.Tag())
	sb.WriteByte('>')
}

func writeClose(sb *strings.Builder, k annotation.Kind) {
	sb.WriteString("</")
	sb.WriteString(k.Tag())
	sb.WriteByte('>')
}

// normalizeRanges clamps ranges into [0, textLen], drops empty or unknown
// ones, and sorts the rest by Start.
func normalizeRanges(ranges []annotation.Range, textLen int) []annotation.Range {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]annotation.Range, 0, len(ranges))
	for _, rg := range ranges {
		start := clampInt(rg.Start, 0, textLen)
		end := clampInt(rg.End, 0, textLen)
		if start >= end || !rg.Kind.Valid() {
			continue
		}
		out = append(out, annotation.Range{Start: start, End: end, Kind: rg.Kind})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// boundaries returns every distinct Start and End offset in ascending order.
func boundaries(spans []annotation.Range) []int {
	offs := make([]int, 0, len(spans)*2)
	for _, s := range spans {
		offs = append(offs, s.Start, s.End)
	}
	slices.Sort(offs)
	return slices.Compact(offs)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
