package entity

// NumeralAllowance is an allow-listed numeral with its card notes.
type NumeralAllowance struct {
	Lemma string
	Notes string
}

// IrregularAdjective is a curated row of the irregular-adjective table.
type IrregularAdjective struct {
	Lemma     string
	Masculine string
	Feminine  string
	Notes     string
}

// IrregularVerb is a curated row of the irregular-verb table.
type IrregularVerb struct {
	Lemma             string
	Frequency         float64
	PresentParticiple string
	EndingType        string
	Notes             string
}

// ProfessionForm is a feminine profession noun keyed to its masculine counterpart.
type ProfessionForm struct {
	Lemma     string
	Masculine string
	Frequency float64
	Notes     string
}

// RegionalWord is one row of the regional vocabulary additions.
type RegionalWord struct {
	Word        string
	POS         string
	Definition  string
	Translation string
	Priority    string
}

// ReferenceData holds every curated lookup table. All tables are optional;
// a missing file yields an empty table. Read-only after construction.
type ReferenceData struct {
	Blacklist           map[string]struct{}
	Numerals            []NumeralAllowance
	IrregularAdjectives map[string]IrregularAdjective
	IrregularVerbs      map[string]IrregularVerb
	Professions         []ProfessionForm
	Regional            []RegionalWord
	GenderHomographs    map[string]struct{}
}

// IsBlacklisted performs the case-insensitive exact match used everywhere.
func (r *ReferenceData) IsBlacklisted(lemma string) bool {
	if r == nil || len(r.Blacklist) == 0 {
		return false
	}
	_, ok := r.Blacklist[NormalizeWordToken(lemma)]
	return ok
}
