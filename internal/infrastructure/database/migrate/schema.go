package migrate

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// VocabCardsColumns holds the columns for the "vocab_cards" table.
	VocabCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "french", Type: field.TypeString},
		{Name: "word_type", Type: field.TypeString, Size: 32},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "source", Type: field.TypeString, Size: 32},
		{Name: "frequency", Type: field.TypeFloat64, Default: 0},
		{Name: "category", Type: field.TypeString, Size: 16, Default: ""},
		{Name: "priority", Type: field.TypeString, Size: 16, Default: ""},
		{Name: "level", Type: field.TypeString, Size: 16, Default: ""},
	}
	// VocabCardsTable holds the schema information for the "vocab_cards" table.
	VocabCardsTable = &schema.Table{
		Name:       "vocab_cards",
		Columns:    VocabCardsColumns,
		PrimaryKey: []*schema.Column{VocabCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabcard_french",
				Unique:  false,
				Columns: []*schema.Column{VocabCardsColumns[1]},
			},
			{
				Name:    "vocabcard_level_frequency",
				Unique:  false,
				Columns: []*schema.Column{VocabCardsColumns[8], VocabCardsColumns[5]},
			},
		},
	}
	// ConjugationCardsColumns holds the columns for the "conjugation_cards" table.
	ConjugationCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "verb", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "frequency", Type: field.TypeFloat64, Default: 0},
		{Name: "verb_group", Type: field.TypeInt, Default: 0},
	}
	// ConjugationCardsTable holds the schema information for the "conjugation_cards" table.
	ConjugationCardsTable = &schema.Table{
		Name:       "conjugation_cards",
		Columns:    ConjugationCardsColumns,
		PrimaryKey: []*schema.Column{ConjugationCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conjugationcard_verb",
				Unique:  true,
				Columns: []*schema.Column{ConjugationCardsColumns[1]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "kind", Type: field.TypeString, Size: 16},
		{Name: "lemma", Type: field.TypeString},
		{Name: "form_m", Type: field.TypeString, Default: ""},
		{Name: "form_f", Type: field.TypeString, Default: ""},
		{Name: "frequency", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString, Size: 32, Default: ""},
		{Name: "pattern", Type: field.TypeString, Default: ""},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_kind_lemma",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConjugationCardsTable,
		ReviewItemsTable,
		VocabCardsTable,
	}
)

// Create runs the schema migration for all tables.
func Create(ctx context.Context, drv dialect.Driver, opts ...schema.MigrateOption) error {
	migrate, err := schema.NewMigrate(drv, opts...)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := migrate.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("migrate: create tables: %w", err)
	}
	return nil
}
