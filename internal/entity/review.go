package entity

// IrregularAdjectiveReview is a patterned or unique adjective surfaced for annotation.
type IrregularAdjectiveReview struct {
	Lemma     string
	Masculine string
	Feminine  string
	Frequency float64
	Class     AdjectiveClass
	Notes     string
}

// IrregularVerbReview is a third-group verb surfaced for annotation.
type IrregularVerbReview struct {
	Lemma             string
	Frequency         float64
	PresentParticiple string
	EndingType        string
	Notes             string
}

// ProfessionReview is a noun pair (or a masculine noun missing its pair).
type ProfessionReview struct {
	Lemma     string
	Masculine string
	Feminine  string
	Frequency float64
	Status    NounPairStatus
	Pattern   string
}

// GenderlessNounReview is a noun recorded without gender.
type GenderlessNounReview struct {
	Lemma       string
	Frequency   float64
	Homographs  int
	Type        string
	ReviewNotes string
}

// ReviewSet groups the human-review tables.
type ReviewSet struct {
	Adjectives      []IrregularAdjectiveReview
	Verbs           []IrregularVerbReview
	Professions     []ProfessionReview
	GenderlessNouns []GenderlessNounReview
}
