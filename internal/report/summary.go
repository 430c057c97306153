// Package report renders the end-of-run summary of counts.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/eslsoft/vocdeck/internal/assembly"
	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/review"
	"github.com/eslsoft/vocdeck/internal/selection"
)

// PartitionCount is the number of lemmas written to one category table.
type PartitionCount struct {
	Name   string
	Lemmas int
}

// DrillCounts sizes each conjugation drill skeleton.
type DrillCounts struct {
	Present     int
	Subjunctive int
	Participles int
	FutureStems int
	EtreVerbs   int
}

// CountDrills sizes the drill skeletons.
func CountDrills(d entity.ConjugationDrills) DrillCounts {
	return DrillCounts{
		Present:     len(d.Present),
		Subjunctive: len(d.Subjunctive),
		Participles: len(d.Participles),
		FutureStems: len(d.FutureStems),
		EtreVerbs:   len(d.EtreVerbs),
	}
}

// Summary collects the counts of one run. Stages that did not run stay nil.
type Summary struct {
	LexiconRows   int
	CoercedFields int
	SpokenWeight  float64
	WrittenWeight float64
	SkippedRows   int
	Partitions    []PartitionCount
	Selection     *selection.Stats
	Review        *review.Stats
	Assembly      *assembly.Stats
	Drills        *DrillCounts
	FilteredOut   int
	Stored        bool
}

// Render writes the summary as aligned columns.
func (s *Summary) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	section := func(title string) { fmt.Fprintf(tw, "%s\t\t\n", title) }
	row := func(label string, value any) { fmt.Fprintf(tw, "  %s\t%v\t\n", label, value) }
	pair := func(label string, a, b int, la, lb string) {
		fmt.Fprintf(tw, "  %s\t%d %s / %d %s\t\n", label, a, la, b, lb)
	}

	section("lexicon")
	row("rows", s.LexiconRows)
	row("coerced numeric fields", s.CoercedFields)
	row("skipped rows", s.SkippedRows)
	if s.SpokenWeight != 0 || s.WrittenWeight != 0 {
		row("frequency", fmt.Sprintf("%g × spoken + %g × written", s.SpokenWeight, s.WrittenWeight))
	}

	if sel := s.Selection; sel != nil {
		section("selection")
		row("lemmas", sel.Lemmas)
		row("blacklisted", sel.Blacklisted)
		row("below minimum frequency", sel.BelowMinimum)
		row("truncated by top-n", sel.TruncatedByTopN)
		row("numerals excluded", sel.NumeralsExcluded)
		pair("numerals", sel.NumeralsInLexicon, sel.NumeralsSynthesized, "in lexicon", "synthesized")
		for _, p := range s.Partitions {
			row("partition "+p.Name, p.Lemmas)
		}
	}

	if r := s.Review; r != nil {
		section("review")
		pair("adjectives", r.AdjectivesClassified, r.AdjectivesNeedReview, "classified", "need review")
		pair("verbs", r.VerbsRegular, r.VerbsIrregular, "regular", "irregular")
		pair("professions", r.ProfessionPairs, r.ProfessionsUnpaired, "paired", "masculine only")
		pair("genderless nouns", r.GenderlessClassified, r.GenderlessNeedReview, "classified", "need review")
	}

	if a := s.Assembly; a != nil {
		section("cards")
		row("vocabulary", a.VocabularyCards)
		row("conjugation", a.ConjugationCards)
		row("blacklisted", a.Blacklisted)
		row("duplicates dropped", a.Duplicates)
		pair("profession additions", a.ProfessionsMatched, a.ProfessionsUnmatched, "matched", "unmatched")
		pair("regional words", a.RegionalMatched, a.RegionalUnmatched, "matched", "unmatched")
		if s.FilteredOut > 0 {
			row("removed by cards.filter", s.FilteredOut)
		}
	}

	if d := s.Drills; d != nil {
		section("drills")
		row("present", d.Present)
		row("subjunctive", d.Subjunctive)
		row("participles", d.Participles)
		row("future stems", d.FutureStems)
		row("etre verbs", d.EtreVerbs)
	}

	if s.Stored {
		section("deck store")
		row("saved", true)
	}
	return tw.Flush()
}
