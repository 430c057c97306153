package resolver

import (
	"strings"
	"unicode/utf8"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
)

type candidate struct {
	ortho string
	freq  float64
}

// cellForms holds every distinct spelling observed per (gender, number) cell.
type cellForms map[entity.Cell][]candidate

func observe(group []entity.LexicalRow, scorer frequency.Scorer) cellForms {
	cells := make(cellForms)
	for _, row := range group {
		cells.add(row.Cell(), row.Ortho, scorer.Form(row))
	}
	return cells
}

func (c cellForms) add(cell entity.Cell, ortho string, freq float64) {
	for i, existing := range c[cell] {
		if existing.ortho == ortho {
			if freq > existing.freq {
				c[cell][i].freq = freq
			}
			return
		}
	}
	c[cell] = append(c[cell], candidate{ortho: ortho, freq: freq})
}

func (c cellForms) pick(g entity.Gender, n entity.Number) string {
	return bestSpelling(c[entity.Cell{Gender: g, Number: n}])
}

func (c cellForms) selected() map[entity.Cell]string {
	out := make(map[entity.Cell]string, len(c))
	for cell, cands := range c {
		if best := bestSpelling(cands); best != "" {
			out[cell] = best
		}
	}
	return out
}

// bestSpelling picks among competing spellings of one cell: highest form
// frequency, then the longer spelling, then one not ending in the plural
// marker, then alphabetical order.
func bestSpelling(cands []candidate) string {
	if len(cands) == 0 {
		return ""
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if preferSpelling(c, best) {
			best = c
		}
	}
	return best.ortho
}

func preferSpelling(a, b candidate) bool {
	if a.freq != b.freq {
		return a.freq > b.freq
	}
	la, lb := utf8.RuneCountInString(a.ortho), utf8.RuneCountInString(b.ortho)
	if la != lb {
		return la > lb
	}
	as, bs := strings.HasSuffix(a.ortho, "s"), strings.HasSuffix(b.ortho, "s")
	if as != bs {
		return !as
	}
	return a.ortho < b.ortho
}
