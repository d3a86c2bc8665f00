// Package markdown seeds annotated text from CommonMark emphasis.
//
// `*x*` and `_x_` become Italic ranges, `**x**` and `__x__` become Bold
// ranges. Blocks are flattened to plain text separated by a blank line;
// every other inline construct contributes its text only. Code blocks and
// thematic breaks carry no inline content and are skipped.
package markdown

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/iw2rmb/annotate/annotation"
)

// Document is markdown flattened into a base text and its ranges.
type Document struct {
	Text   string
	Ranges []annotation.Range
}

// Store builds an annotation store from the document. Ranges that collide
// with an earlier range of the same kind (nested `*a *b* c*`) are dropped and
// logged at debug level.
func (d Document) Store() *annotation.Store {
	s := annotation.New(d.Text)
	for _, r := range d.Ranges {
		if err := s.Insert(r); err != nil {
			log.Debug().Err(err).Stringer("range", r).Msg("dropping markdown range")
		}
	}
	return s
}

type flattener struct {
	src    []byte
	sb     strings.Builder
	runes  int
	ranges []annotation.Range
	open   []int // rune offset of each enclosing emphasis
	blocks int
}

func Parse(src []byte) (Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))
	if root == nil {
		return Document{}, errors.New("markdown: parse: nil document")
	}

	f := &flattener{src: src}
	if err := ast.Walk(root, f.visit); err != nil {
		return Document{}, fmt.Errorf("markdown: flatten: %w", err)
	}
	return Document{Text: f.sb.String(), Ranges: f.ranges}, nil
}

func (f *flattener) write(s string) {
	f.sb.WriteString(s)
	f.runes += utf8.RuneCountInString(s)
}

func (f *flattener) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument && n.FirstChild() != nil && n.FirstChild().Type() == ast.TypeInline {
		// A block holding inline content; separate it from the previous one.
		if entering {
			if f.blocks > 0 {
				f.write("\n\n")
			}
			f.blocks++
		}
		return ast.WalkContinue, nil
	}

	switch node := n.(type) {
	case *ast.Emphasis:
		if entering {
			f.open = append(f.open, f.runes)
			return ast.WalkContinue, nil
		}
		start := f.open[len(f.open)-1]
		f.open = f.open[:len(f.open)-1]
		if f.runes > start {
			f.ranges = append(f.ranges, annotation.Range{Start: start, End: f.runes, Kind: emphasisKind(node.Level)})
		}
	case *ast.Text:
		if !entering {
			return ast.WalkContinue, nil
		}
		f.write(string(f.textValue(node)))
		if node.SoftLineBreak() || node.HardLineBreak() {
			f.write("\n")
		}
	case *ast.String:
		if entering {
			f.write(string(node.Value))
		}
	case *ast.AutoLink:
		if entering {
			f.write(string(node.Label(f.src)))
		}
	}
	return ast.WalkContinue, nil
}

// textValue decodes backslash escapes and character references the way
// goldmark's HTML renderer does. Raw text (code spans) is kept verbatim.
func (f *flattener) textValue(n *ast.Text) []byte {
	v := n.Segment.Value(f.src)
	if n.IsRaw() {
		return v
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

func emphasisKind(level int) annotation.Kind {
	if level >= 2 {
		return annotation.Bold
	}
	return annotation.Italic
}
