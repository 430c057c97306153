package entity

// LemmaRecord is one selected lemma with its score and resolved forms.
type LemmaRecord struct {
	Key        LemmaKey
	Lemma      string
	Category   Category
	Gender     Gender
	Frequency  float64
	Homographs int
	Forms      ResolvedForms
	Verb       *VerbForms
	Source     Source
	Notes      string
}

// DisplayForms returns the forms display string, falling back to the lemma.
// Verbs show their paradigm instead of the gender/number forms.
func (r LemmaRecord) DisplayForms() string {
	if r.Verb != nil && r.Verb.Display != "" {
		return r.Verb.Display
	}
	if r.Forms.Display != "" {
		return r.Forms.Display
	}
	return r.Lemma
}

// Partition is a named output bucket produced by selection.
type Partition struct {
	Name     string
	Category Category
	Records  []LemmaRecord
}
