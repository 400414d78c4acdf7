package proof

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render returns a plain-text Fitch rendering of the proof, one numbered
// line per row with scope bars and right-aligned justifications.
func (p *Proof) Render() string {
	width := 0
	for _, line := range p.Lines() {
		if n := utf8.RuneCountInString(line.Formula.String()); n > width {
			width = n
		}
	}

	var b strings.Builder
	renderEntries(&b, p.entries, 0, width, p.next-1)
	return b.String()
}

func renderEntries(b *strings.Builder, entries []Entry, depth, width, maxIndex int) {
	numWidth := len(fmt.Sprintf("%d", maxIndex))
	if numWidth < 1 {
		numWidth = 1
	}

	for _, e := range entries {
		switch e := e.(type) {
		case *Line:
			bars := strings.Repeat("│ ", depth+1)
			f := e.Formula.String()
			pad := strings.Repeat(" ", width-utf8.RuneCountInString(f)+2)
			fmt.Fprintf(b, "%*d %s%s%s%s\n", numWidth, e.Index, bars, f, pad, e.Just.String())
			if e.Just.Rule.Name == "AS" {
				fmt.Fprintf(b, "%s %s├──\n", strings.Repeat(" ", numWidth), strings.Repeat("│ ", depth))
			}
		case *Subproof:
			renderEntries(b, e.Entries, depth+1, width, maxIndex)
		}
	}
}
