// Package highlight colors rendered markup for terminal display via Chroma.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Markup returns an ANSI-highlighted version of an HTML fragment using the
// given Chroma theme. Unknown themes fall back to Chroma's default style;
// on any lexer or formatter failure the input is returned unchanged.
func Markup(src, theme string) string {
	if src == "" {
		return ""
	}
	lex := lexers.Get("html")
	if lex == nil {
		return src
	}
	lex = chroma.Coalesce(lex)
	fmtr := formatters.Get("terminal256")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	it, err := lex.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, styles.Get(theme), it); err != nil {
		return src
	}
	out := buf.String()
	if !strings.HasSuffix(src, "\n") {
		out = strings.TrimRight(out, "\n")
	}
	return out
}
