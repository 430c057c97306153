package entity

import "fmt"

// AdjectiveClass labels how an adjective forms its feminine.
type AdjectiveClass string

const (
	AdjectiveInvariable AdjectiveClass = "invariable"
	AdjectiveRegular    AdjectiveClass = "regular"
	AdjectiveDoubled    AdjectiveClass = "doubled-consonant"
	AdjectivePatterned  AdjectiveClass = "patterned"
	AdjectiveUnique     AdjectiveClass = "unique"
	AdjectiveUnknown    AdjectiveClass = "unknown"
)

// NeedsReview reports whether a human has to annotate the adjective.
func (c AdjectiveClass) NeedsReview() bool {
	return c == AdjectiveUnique || c == AdjectiveUnknown
}

// AdjectiveClassification pairs the class with the suffix rule name when patterned.
type AdjectiveClassification struct {
	Class   AdjectiveClass
	Pattern string
}

// NounPairStatus describes which genders of a noun were observed.
type NounPairStatus string

const (
	NounHasBoth            NounPairStatus = "has_both"
	NounMascOnly           NounPairStatus = "m_only"
	NounMascOnlyProfession NounPairStatus = "m_only_profession"
	NounFemOnly            NounPairStatus = "f_only"
	NounPairUnknown        NounPairStatus = "unknown"
)

// NounPairClassification pairs the status with the detected pattern or review hint.
type NounPairClassification struct {
	Status  NounPairStatus
	Pattern string
}

// VerbGroup is the traditional conjugation group (1, 2 or 3).
type VerbGroup int

const (
	VerbGroupUnknown VerbGroup = 0
	VerbGroupFirst   VerbGroup = 1
	VerbGroupSecond  VerbGroup = 2
	VerbGroupThird   VerbGroup = 3
)

// Label renders the group as printed on conjugation cards.
func (g VerbGroup) Label() string {
	switch g {
	case VerbGroupFirst:
		return "1er groupe"
	case VerbGroupSecond:
		return "2e groupe"
	case VerbGroupThird:
		return "3e groupe"
	default:
		return ""
	}
}

func (g VerbGroup) String() string {
	return fmt.Sprintf("%d", int(g))
}

// ParseVerbGroupLabel is the inverse of Label.
func ParseVerbGroupLabel(label string) VerbGroup {
	switch label {
	case "1er groupe":
		return VerbGroupFirst
	case "2e groupe":
		return VerbGroupSecond
	case "3e groupe":
		return VerbGroupThird
	default:
		return VerbGroupUnknown
	}
}

// VerbClassification is the group plus the reason it was chosen.
type VerbClassification struct {
	Group  VerbGroup
	Reason string
}
