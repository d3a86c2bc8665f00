package annotation

// Kind classifies a formatting range.
type Kind uint8

const (
	Bold Kind = iota
	Italic
)

type kindInfo struct {
	name string
	tag  string
}

// kindTable is indexed by Kind. Its order is the tie-break order used by
// renderers when ranges of different kinds share an exact span.
var kindTable = [...]kindInfo{
	Bold:   {name: "bold", tag: "b"},
	Italic: {name: "italic", tag: "i"},
}

// Kinds returns every known kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindTable))
	for k := range kindTable {
		out = append(out, Kind(k))
	}
	return out
}

func (k Kind) Valid() bool { return int(k) < len(kindTable) }

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindTable[k].name
}

// Tag returns the markup element name for k ("b", "i").
func (k Kind) Tag() string {
	if !k.Valid() {
		return ""
	}
	return kindTable[k].tag
}

// ParseKind maps a kind name or tag back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, info := range kindTable {
		if s == info.name || s == info.tag {
			return Kind(k), true
		}
	}
	return 0, false
}
