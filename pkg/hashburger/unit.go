package hashburger

import (
	"github.com/rivo/uniseg"
)

// Unit selects what counts as one character when measuring and slicing.
type Unit int

const (
	UnitRune     Unit = iota // Unicode scalar values; an invalid byte counts as one
	UnitGrapheme             // user-perceived characters (grapheme clusters)
)

func (this Unit) String() string {
	switch this {
	case UnitRune:
		return "rune"
	case UnitGrapheme:
		return "grapheme"
	default:
		return "unknown"
	}
}

// boundaries returns the byte offset at which every character of s starts,
// followed by len(s). Character i spans s[b[i]:b[i+1]].
func (this Unit) boundaries(s string) []int {
	cuts := make([]int, 0, len(s)+1)
	switch this {
	case UnitGrapheme:
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			from, _ := g.Positions()
			cuts = append(cuts, from)
		}
	default:
		for i := range s {
			cuts = append(cuts, i)
		}
	}
	return append(cuts, len(s))
}
