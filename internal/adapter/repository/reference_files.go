package repository

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/repository"
)

// Reference table file names.
const (
	BlacklistFile           = "blacklist.csv"
	NumeralsFile            = "whitelist_numerals.csv"
	IrregularAdjectivesFile = "irregular_adjectives.csv"
	IrregularVerbsFile      = "irregular_verbs.csv"
	ProfessionsCheckFile    = "professions_check.csv"
	GenderlessNounsFile     = "nom_without_genre.csv"
	GenderHomographsFile    = "gender_homographs.csv"
	ProfessionFormsFile     = "professions_f.csv"
	RegionalFile            = "quebecismes.csv"
)

type referenceFiles struct {
	dataDir      string
	additionsDir string
	logger       logrus.FieldLogger
}

// NewReferenceFiles reads curated tables from dataDir and addition lists from additionsDir.
func NewReferenceFiles(dataDir, additionsDir string, logger logrus.FieldLogger) repository.ReferenceRepository {
	return &referenceFiles{dataDir: dataDir, additionsDir: additionsDir, logger: logger}
}

type tableLoader struct {
	dir      string
	file     string
	required []string
	apply    func(rows []tableRow)
}

func (r *referenceFiles) Load(ctx context.Context) (*entity.ReferenceData, error) {
	ref := &entity.ReferenceData{
		Blacklist:           map[string]struct{}{},
		IrregularAdjectives: map[string]entity.IrregularAdjective{},
		IrregularVerbs:      map[string]entity.IrregularVerb{},
		GenderHomographs:    map[string]struct{}{},
	}

	loaders := []tableLoader{
		{r.dataDir, BlacklistFile, []string{"lemme"}, func(rows []tableRow) {
			addSet(ref.Blacklist, rows)
		}},
		{r.dataDir, NumeralsFile, []string{"lemme"}, func(rows []tableRow) {
			for _, row := range rows {
				if row["lemme"] != "" {
					ref.Numerals = append(ref.Numerals, entity.NumeralAllowance{Lemma: row["lemme"], Notes: row["notes"]})
				}
			}
		}},
		{r.dataDir, IrregularAdjectivesFile, []string{"lemme", "form_m", "form_f"}, func(rows []tableRow) {
			for _, row := range rows {
				key := entity.NormalizeWordToken(row["lemme"])
				if key == "" {
					continue
				}
				ref.IrregularAdjectives[key] = entity.IrregularAdjective{
					Lemma:     row["lemme"],
					Masculine: row["form_m"],
					Feminine:  row["form_f"],
					Notes:     row["notes"],
				}
			}
		}},
		{r.dataDir, IrregularVerbsFile, []string{"lemme"}, func(rows []tableRow) {
			for _, row := range rows {
				key := entity.NormalizeWordToken(row["lemme"])
				if key == "" {
					continue
				}
				freq := r.float(IrregularVerbsFile, row, "freqlem")
				ref.IrregularVerbs[key] = entity.IrregularVerb{
					Lemma:             row["lemme"],
					Frequency:         freq,
					PresentParticiple: row["participe_present"],
					EndingType:        row["ending_type"],
					Notes:             row["notes"],
				}
			}
		}},
		{r.dataDir, GenderHomographsFile, []string{"lemme"}, func(rows []tableRow) {
			addSet(ref.GenderHomographs, rows)
		}},
		{r.additionsDir, ProfessionFormsFile, []string{"lemme", "lemme_m"}, func(rows []tableRow) {
			for _, row := range rows {
				if row["lemme"] == "" {
					continue
				}
				ref.Professions = append(ref.Professions, entity.ProfessionForm{
					Lemma:     row["lemme"],
					Masculine: row["lemme_m"],
					Frequency: r.float(ProfessionFormsFile, row, "freqlem"),
					Notes:     row["notes"],
				})
			}
		}},
		{r.additionsDir, RegionalFile, []string{"word"}, func(rows []tableRow) {
			for _, row := range rows {
				if row["word"] == "" {
					continue
				}
				ref.Regional = append(ref.Regional, entity.RegionalWord{
					Word:        row["word"],
					POS:         row["pos"],
					Definition:  row["definition"],
					Translation: row["translation"],
					Priority:    row["priority"],
				})
			}
		}},
	}

	for _, l := range loaders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(l.dir, l.file)
		rows, ok, err := readTable(path, l.required...)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.logger.WithField("file", path).Warn("reference table not found, using an empty lookup")
			continue
		}
		l.apply(rows)
		r.logger.WithFields(logrus.Fields{"file": path, "rows": len(rows)}).Debug("reference table loaded")
	}
	return ref, nil
}

func (r *referenceFiles) float(file string, row tableRow, column string) float64 {
	v, ok := row.float(column)
	if !ok {
		r.logger.WithFields(logrus.Fields{"file": file, "column": column, "value": row[column]}).
			Warn("malformed number coerced to zero")
	}
	return v
}

func addSet(set map[string]struct{}, rows []tableRow) {
	for _, row := range rows {
		if key := entity.NormalizeWordToken(row["lemme"]); key != "" {
			set[key] = struct{}{}
		}
	}
}
