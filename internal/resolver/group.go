package resolver

import (
	"github.com/eslsoft/vocdeck/internal/entity"
)

// Groups indexes lexicon rows by normalized lemma key, preserving first-seen order.
type Groups struct {
	keys []entity.LemmaKey
	rows map[entity.LemmaKey][]entity.LexicalRow
}

// GroupRows buckets rows by (lemma, category). Adjective liaison variants
// (bel, vieil, ...) are dropped; compound keys fold onto their primary lemma.
func GroupRows(rows []entity.LexicalRow) *Groups {
	g := &Groups{rows: make(map[entity.LemmaKey][]entity.LexicalRow)}
	for _, row := range rows {
		if entity.IsLiaisonVariant(row.Lemma, row.Category) {
			continue
		}
		key := row.Key()
		if _, ok := g.rows[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.rows[key] = append(g.rows[key], row)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Groups) Keys() []entity.LemmaKey {
	return g.keys
}

// Rows returns the rows of a group, or nil.
func (g *Groups) Rows(key entity.LemmaKey) []entity.LexicalRow {
	return g.rows[key]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.keys)
}

func validateGroup(group []entity.LexicalRow) (entity.LemmaKey, error) {
	if len(group) == 0 {
		return entity.LemmaKey{}, entity.ErrEmptyLemmaGroup
	}
	key := group[0].Key()
	for _, row := range group[1:] {
		if row.Key() != key {
			return entity.LemmaKey{}, entity.ErrMixedLemmaGroup
		}
	}
	return key, nil
}
