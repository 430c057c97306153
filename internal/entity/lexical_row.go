package entity

import "strings"

// Gender as recorded in the lexicon. The empty value means "not recorded".
type Gender string

const (
	GenderNone      Gender = ""
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
)

// ParseGender accepts m/f and maps everything else to GenderNone.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m":
		return GenderMasculine
	case "f":
		return GenderFeminine
	default:
		return GenderNone
	}
}

// Number as recorded in the lexicon. The empty value means "not recorded".
type Number string

const (
	NumberNone     Number = ""
	NumberSingular Number = "s"
	NumberPlural   Number = "p"
)

// ParseNumber accepts s/p and maps everything else to NumberNone.
func ParseNumber(raw string) Number {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s":
		return NumberSingular
	case "p":
		return NumberPlural
	default:
		return NumberNone
	}
}

// Cell is an observed (gender, number) pair.
type Cell struct {
	Gender Gender
	Number Number
}

// Inflection codes found in the infover column.
const (
	InflectionInfinitive        = "inf"
	InflectionPastParticiple    = "par:pas"
	InflectionPresentParticiple = "par:pre"
)

// LexicalRow is one row of the lexicon. Rows are never mutated after load.
type LexicalRow struct {
	Ortho          string
	Lemma          string
	Category       Category
	Gender         Gender
	Number         Number
	SpokenFreq     float64 // freqlemfilms2
	WrittenFreq    float64 // freqlemlivres
	FormSpoken     float64 // freqfilms2
	FormWritten    float64 // freqlivres
	IsLemma        bool
	Homographs     int
	InflectionCode string
}

// Cell returns the row's (gender, number) pair.
func (r LexicalRow) Cell() Cell {
	return Cell{Gender: r.Gender, Number: r.Number}
}

// HasInflection reports whether the infover codes contain the given code.
// Codes are ';'-separated, e.g. "ind:pre:3s;sub:pre:3s;".
func (r LexicalRow) HasInflection(code string) bool {
	for _, part := range strings.Split(r.InflectionCode, ";") {
		if strings.TrimSpace(part) == code {
			return true
		}
	}
	return false
}

// Key returns the normalized grouping key of the row.
func (r LexicalRow) Key() LemmaKey {
	return NewLemmaKey(r.Lemma, r.Category)
}
