package repository

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/repository"
)

// Output file names.
const (
	VocabularyFile  = "vocabulary_skeleton.csv"
	ConjugationFile = "conjugation_skeleton.csv"
	PresentFile     = "conj_present_skeleton.csv"
	SubjunctiveFile = "conj_subjonctif_skeleton.csv"
	ParticiplesFile = "conj_participes_skeleton.csv"
	FutureStemsFile = "conj_futur_stems_skeleton.csv"
	EtreVerbsFile   = "conj_etre_verbs_skeleton.csv"
	reviewDir       = "review"
	levelsDir       = "levels"
)

var (
	categoryHeader   = []string{"lemme", "cgram", "genre", "freqlem", "forms", "nbhomogr"}
	vocabularyHeader = []string{"French", "WordType", "Notes", "Source", "freqlem", "Priority"}
)

type outputFiles struct {
	categoriesDir string
	outputDir     string
	logger        logrus.FieldLogger
}

// NewOutputFiles writes category tables to categoriesDir and every other
// output under outputDir. Review tables land in outputDir/review so curated
// copies in the data directory are never overwritten.
func NewOutputFiles(categoriesDir, outputDir string, logger logrus.FieldLogger) repository.OutputRepository {
	return &outputFiles{categoriesDir: categoriesDir, outputDir: outputDir, logger: logger}
}

func (o *outputFiles) write(ctx context.Context, path string, header []string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeTable(path, header, rows); err != nil {
		return err
	}
	o.logger.WithFields(logrus.Fields{"file": path, "rows": len(rows)}).Info("table written")
	return nil
}

func (o *outputFiles) WriteCategories(ctx context.Context, partitions []entity.Partition) error {
	for _, p := range partitions {
		rows := lo.Map(p.Records, func(r entity.LemmaRecord, _ int) []string {
			return []string{r.Lemma, string(r.Category), string(r.Gender), formatFreq(r.Frequency), r.DisplayForms(), strconv.Itoa(r.Homographs)}
		})
		if err := o.write(ctx, filepath.Join(o.categoriesDir, p.Name+".csv"), categoryHeader, rows); err != nil {
			return err
		}
	}
	return nil
}

func (o *outputFiles) WriteReview(ctx context.Context, set entity.ReviewSet) error {
	dir := filepath.Join(o.outputDir, reviewDir)

	adjectives := lo.Map(set.Adjectives, func(a entity.IrregularAdjectiveReview, _ int) []string {
		return []string{a.Lemma, a.Masculine, a.Feminine, formatFreq(a.Frequency), a.Notes}
	})
	if err := o.write(ctx, filepath.Join(dir, IrregularAdjectivesFile),
		[]string{"lemme", "form_m", "form_f", "freqlem", "notes"}, adjectives); err != nil {
		return err
	}

	verbs := lo.Map(set.Verbs, func(v entity.IrregularVerbReview, _ int) []string {
		return []string{v.Lemma, formatFreq(v.Frequency), v.PresentParticiple, v.EndingType, v.Notes}
	})
	if err := o.write(ctx, filepath.Join(dir, IrregularVerbsFile),
		[]string{"lemme", "freqlem", "participe_present", "ending_type", "notes"}, verbs); err != nil {
		return err
	}

	professions := lo.Map(set.Professions, func(p entity.ProfessionReview, _ int) []string {
		return []string{p.Lemma, p.Masculine, p.Feminine, formatFreq(p.Frequency), string(p.Status), p.Pattern}
	})
	if err := o.write(ctx, filepath.Join(dir, ProfessionsCheckFile),
		[]string{"lemme", "form_m", "form_f", "freqlem", "status", "pattern"}, professions); err != nil {
		return err
	}

	genderless := lo.Map(set.GenderlessNouns, func(g entity.GenderlessNounReview, _ int) []string {
		return []string{g.Lemma, formatFreq(g.Frequency), strconv.Itoa(g.Homographs), g.Type, g.ReviewNotes}
	})
	return o.write(ctx, filepath.Join(dir, GenderlessNounsFile),
		[]string{"lemme", "freqlem", "nbhomogr", "type", "review_notes"}, genderless)
}

func vocabularyRows(vocab []entity.VocabEntry) [][]string {
	return lo.Map(vocab, func(v entity.VocabEntry, _ int) []string {
		return []string{v.French, string(v.WordType), v.Notes, string(v.Source), formatFreq(v.Frequency), v.Priority}
	})
}

func (o *outputFiles) WriteVocabulary(ctx context.Context, vocab []entity.VocabEntry) error {
	return o.write(ctx, filepath.Join(o.outputDir, VocabularyFile), vocabularyHeader, vocabularyRows(vocab))
}

func (o *outputFiles) WriteConjugation(ctx context.Context, conj []entity.ConjugationEntry) error {
	rows := lo.Map(conj, func(c entity.ConjugationEntry, _ int) []string {
		return []string{c.Verb, c.Notes, formatFreq(c.Frequency), c.Group.Label()}
	})
	return o.write(ctx, filepath.Join(o.outputDir, ConjugationFile), []string{"Verb", "Notes", "freqlem", "Group"}, rows)
}

func (o *outputFiles) WriteLevels(ctx context.Context, buckets []entity.LevelBucket) error {
	for _, b := range buckets {
		path := filepath.Join(o.outputDir, levelsDir, string(b.Level)+".csv")
		if err := o.write(ctx, path, vocabularyHeader, vocabularyRows(b.Entries)); err != nil {
			return err
		}
	}
	return nil
}

func (o *outputFiles) WriteDrills(ctx context.Context, drills entity.ConjugationDrills) error {
	present := lo.Map(drills.Present, func(d entity.PresentDrill, _ int) []string {
		return []string{d.Verb, d.Group.Label(), d.Pattern, formatFreq(d.Frequency)}
	})
	if err := o.write(ctx, filepath.Join(o.outputDir, PresentFile),
		[]string{"Verb", "Group", "Pattern", "freqlem"}, present); err != nil {
		return err
	}

	subjunctive := lo.Map(drills.Subjunctive, func(d entity.SubjunctiveDrill, _ int) []string {
		return []string{d.Verb, formatFreq(d.Frequency)}
	})
	if err := o.write(ctx, filepath.Join(o.outputDir, SubjunctiveFile),
		[]string{"Verb", "freqlem"}, subjunctive); err != nil {
		return err
	}

	participles := lo.Map(drills.Participles, func(d entity.ParticipleDrill, _ int) []string {
		return []string{d.Verb, d.Participle, d.Auxiliary, d.Pattern, d.Related, formatFreq(d.Frequency)}
	})
	if err := o.write(ctx, filepath.Join(o.outputDir, ParticiplesFile),
		[]string{"Verb", "Participe", "Auxiliaire", "Pattern", "Related", "freqlem"}, participles); err != nil {
		return err
	}

	stems := lo.Map(drills.FutureStems, func(d entity.FutureStemDrill, _ int) []string {
		return []string{d.Verb, d.Stem, formatFreq(d.Frequency)}
	})
	if err := o.write(ctx, filepath.Join(o.outputDir, FutureStemsFile),
		[]string{"Verb", "FuturStem", "freqlem"}, stems); err != nil {
		return err
	}

	etre := lo.Map(drills.EtreVerbs, func(d entity.EtreVerbDrill, _ int) []string {
		return []string{d.Verb, d.Participle, formatFreq(d.Frequency)}
	})
	return o.write(ctx, filepath.Join(o.outputDir, EtreVerbsFile),
		[]string{"Verb", "Participe", "freqlem"}, etre)
}
