package entity

// Source tags where a card came from.
type Source string

const (
	SourceLexicon   Source = "lexique"
	SourceAdditions Source = "additions"
	SourceWhitelist Source = "whitelist"
	SourceRegional  Source = "quebecismes"
)

// Priority values used by regional additions.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// VocabEntry is one vocabulary card record.
type VocabEntry struct {
	French    string
	WordType  WordType
	Notes     string
	Source    Source
	Frequency float64
	Category  Category
	Priority  string
	Level     Level
}

// ConjugationEntry is one conjugation card record.
type ConjugationEntry struct {
	Verb      string
	Notes     string
	Frequency float64
	Group     VerbGroup
}

// Level is a CEFR-like difficulty bucket derived from vocabulary rank.
type Level string

const (
	LevelA1A2  Level = "a1_a2"
	LevelB1    Level = "b1"
	LevelB2    Level = "b2"
	LevelC1    Level = "c1"
	LevelOther Level = "autres"
)

// LevelBucket is the vocabulary of one level file.
type LevelBucket struct {
	Level   Level
	Entries []VocabEntry
}

// Deck is the full output of card assembly.
type Deck struct {
	Vocabulary  []VocabEntry
	Conjugation []ConjugationEntry
	Drills      ConjugationDrills
	Review      ReviewSet
}

// PresentDrill is a présent conjugation drill card.
type PresentDrill struct {
	Verb      string
	Group     VerbGroup
	Pattern   string
	Frequency float64
}

// SubjunctiveDrill lists a verb with an irregular subjonctif.
type SubjunctiveDrill struct {
	Verb      string
	Frequency float64
}

// ParticipleDrill is an irregular past participle with its auxiliary.
type ParticipleDrill struct {
	Verb       string
	Participle string
	Auxiliary  string
	Pattern    string
	Related    string
	Frequency  float64
}

// FutureStemDrill is an irregular futur/conditionnel stem.
type FutureStemDrill struct {
	Verb      string
	Stem      string
	Frequency float64
}

// EtreVerbDrill is a verb conjugated with être in compound tenses.
type EtreVerbDrill struct {
	Verb       string
	Participle string
	Frequency  float64
}

// ConjugationDrills bundles the drill skeletons.
type ConjugationDrills struct {
	Present     []PresentDrill
	Subjunctive []SubjunctiveDrill
	Participles []ParticipleDrill
	FutureStems []FutureStemDrill
	EtreVerbs   []EtreVerbDrill
}
