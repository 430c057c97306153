package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/samber/lo"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/infrastructure/database/migrate"
	"github.com/eslsoft/vocdeck/internal/repository"
	"github.com/eslsoft/vocdeck/pkg/filterexpr"
)

// insertBatch keeps each INSERT below sqlite's bound-parameter limit.
const insertBatch = 100

// review item kinds stored in review_items.kind
const (
	reviewKindAdjective  = "adjective"
	reviewKindVerb       = "verb"
	reviewKindProfession = "profession"
	reviewKindGenderless = "genderless"
)

type deckRepository struct {
	drv dialect.Driver
}

// NewDeckRepository constructs an ent dialect/sql backed deck store.
func NewDeckRepository(drv dialect.Driver) repository.DeckRepository {
	return &deckRepository{drv: drv}
}

func (r *deckRepository) Migrate(ctx context.Context) error {
	return migrate.Create(ctx, r.drv, schema.WithDropIndex(true), schema.WithDropColumn(true))
}

// Save replaces the stored deck in one transaction.
func (r *deckRepository) Save(ctx context.Context, deck entity.Deck) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := r.save(ctx, tx, deck); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit deck: %w", err)
	}
	return nil
}

func (r *deckRepository) save(ctx context.Context, tx dialect.Tx, deck entity.Deck) error {
	for _, tbl := range migrate.Tables {
		query, args := entsql.Dialect(r.drv.Dialect()).Delete(tbl.Name).Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("clear %s: %w", tbl.Name, err)
		}
	}

	vocab := lo.Map(deck.Vocabulary, func(v entity.VocabEntry, i int) []any {
		return []any{int64(i + 1), v.French, string(v.WordType), v.Notes, string(v.Source), v.Frequency,
			string(v.Category), v.Priority, string(v.Level)}
	})
	if err := r.insert(ctx, tx, migrate.VocabCardsTable, vocab); err != nil {
		return err
	}

	conj := lo.Map(deck.Conjugation, func(c entity.ConjugationEntry, i int) []any {
		return []any{int64(i + 1), c.Verb, c.Notes, c.Frequency, int(c.Group)}
	})
	if err := r.insert(ctx, tx, migrate.ConjugationCardsTable, conj); err != nil {
		return err
	}

	return r.insert(ctx, tx, migrate.ReviewItemsTable, reviewRows(deck.Review))
}

func reviewRows(set entity.ReviewSet) [][]any {
	var rows [][]any
	add := func(kind, lemma, masc, fem string, freq float64, status, pattern, notes string) {
		rows = append(rows, []any{int64(len(rows) + 1), kind, lemma, masc, fem, freq, status, pattern, notes})
	}
	for _, a := range set.Adjectives {
		add(reviewKindAdjective, a.Lemma, a.Masculine, a.Feminine, a.Frequency, string(a.Class), "", a.Notes)
	}
	for _, v := range set.Verbs {
		add(reviewKindVerb, v.Lemma, "", "", v.Frequency, "", v.EndingType, v.Notes)
	}
	for _, p := range set.Professions {
		add(reviewKindProfession, p.Lemma, p.Masculine, p.Feminine, p.Frequency, string(p.Status), p.Pattern, "")
	}
	for _, g := range set.GenderlessNouns {
		add(reviewKindGenderless, g.Lemma, "", "", g.Frequency, g.Type, "", g.ReviewNotes)
	}
	return rows
}

func (r *deckRepository) insert(ctx context.Context, tx dialect.Tx, tbl *schema.Table, rows [][]any) error {
	columns := lo.Map(tbl.Columns, func(c *schema.Column, _ int) string { return c.Name })
	for _, chunk := range lo.Chunk(rows, insertBatch) {
		builder := entsql.Dialect(r.drv.Dialect()).Insert(tbl.Name).Columns(columns...)
		for _, row := range chunk {
			builder.Values(row...)
		}
		query, args := builder.Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("insert into %s: %w", tbl.Name, err)
		}
	}
	return nil
}

func (r *deckRepository) ListVocabulary(ctx context.Context, query *repository.ListVocabQuery) ([]entity.VocabEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == nil {
		query = &repository.ListVocabQuery{}
	}

	filter, err := filterexpr.Compile(query.GetFilter(), repository.VocabSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidFilter, err)
	}
	preds, err := filter.Predicates()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidFilter, err)
	}
	order, err := filterexpr.ParseOrder(query.GetOrderBy(), repository.VocabSchema.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: order_by: %w", entity.ErrInvalidFilter, err)
	}

	b := entsql.Dialect(r.drv.Dialect())
	sel := b.Select("french", "word_type", "notes", "source", "frequency", "category", "priority", "level").
		From(b.Table(migrate.VocabCardsTable.Name))
	for _, p := range preds {
		sel.Where(predicate(p))
	}
	for _, k := range order.Keys() {
		if k.Desc {
			sel.OrderBy(entsql.Desc(k.Column))
		} else {
			sel.OrderBy(entsql.Asc(k.Column))
		}
	}
	if query.Limit > 0 {
		sel.Limit(query.Limit)
	}

	stmt, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, stmt, args, rows); err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	defer rows.Close()

	var out []entity.VocabEntry
	for rows.Next() {
		var (
			v                                 entity.VocabEntry
			wordType, source, category, level string
		)
		if err := rows.Scan(&v.French, &wordType, &v.Notes, &source, &v.Frequency, &category, &v.Priority, &level); err != nil {
			return nil, fmt.Errorf("scan vocabulary: %w", err)
		}
		v.WordType = entity.WordType(wordType)
		v.Source = entity.Source(source)
		v.Category = entity.Category(category)
		v.Level = entity.Level(level)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabulary: %w", err)
	}
	return out, nil
}

func predicate(p filterexpr.Predicate) *entsql.Predicate {
	switch p.Op {
	case filterexpr.OpGT:
		return entsql.GT(p.Column, p.Value)
	case filterexpr.OpGTE:
		return entsql.GTE(p.Column, p.Value)
	case filterexpr.OpLT:
		return entsql.LT(p.Column, p.Value)
	case filterexpr.OpLTE:
		return entsql.LTE(p.Column, p.Value)
	case filterexpr.OpSW:
		return entsql.HasPrefix(p.Column, p.Value.(string))
	case filterexpr.OpIN:
		values := p.Value.([]string)
		return entsql.In(p.Column, lo.ToAnySlice(values)...)
	default:
		return entsql.EQ(p.Column, p.Value)
	}
}
