package entity

import "strings"

// Category is a grammatical category code as recorded in the lexicon (cgram).
type Category string

const (
	CategoryUnspecified      Category = ""
	CategoryNoun             Category = "NOM"
	CategoryVerb             Category = "VER"
	CategoryAuxiliary        Category = "AUX"
	CategoryAdjective        Category = "ADJ"
	CategoryAdverb           Category = "ADV"
	CategoryPreposition      Category = "PRE"
	CategoryConjunction      Category = "CON"
	CategoryOnomatopoeia     Category = "ONO"
	CategoryLiaison          Category = "LIA"
	CategoryPronounPersonal  Category = "PRO:per"
	CategoryPronounIndef     Category = "PRO:ind"
	CategoryPronounPossess   Category = "PRO:pos"
	CategoryPronounRelative  Category = "PRO:rel"
	CategoryPronounInterrog  Category = "PRO:int"
	CategoryPronounDemonstr  Category = "PRO:dem"
	CategoryArticleDefinite  Category = "ART:def"
	CategoryArticleIndef     Category = "ART:ind"
	CategoryNumeral          Category = "ADJ:num"
	CategoryAdjIndefinite    Category = "ADJ:ind"
	CategoryAdjPossessive    Category = "ADJ:pos"
	CategoryAdjInterrogative Category = "ADJ:int"
	CategoryAdjDemonstrative Category = "ADJ:dem"
)

var knownCategories = map[Category]struct{}{
	CategoryNoun: {}, CategoryVerb: {}, CategoryAuxiliary: {}, CategoryAdjective: {},
	CategoryAdverb: {}, CategoryPreposition: {}, CategoryConjunction: {}, CategoryOnomatopoeia: {},
	CategoryLiaison: {}, CategoryPronounPersonal: {}, CategoryPronounIndef: {}, CategoryPronounPossess: {},
	CategoryPronounRelative: {}, CategoryPronounInterrog: {}, CategoryPronounDemonstr: {},
	CategoryArticleDefinite: {}, CategoryArticleIndef: {}, CategoryNumeral: {}, CategoryAdjIndefinite: {},
	CategoryAdjPossessive: {}, CategoryAdjInterrogative: {}, CategoryAdjDemonstrative: {},
}

// ParseCategory trims the raw code. Unknown codes are preserved verbatim.
func ParseCategory(code string) Category {
	return Category(strings.TrimSpace(code))
}

// Known reports whether the code belongs to the closed set of lexicon categories.
func (c Category) Known() bool {
	_, ok := knownCategories[c]
	return ok
}

// IsVerbal reports whether rows of this category carry a verb paradigm.
func (c Category) IsVerbal() bool {
	return c == CategoryVerb || c == CategoryAuxiliary
}

// FileStem returns the name used for per-category output files (ADJ:num -> ADJ_num).
func (c Category) FileStem() string {
	return strings.ReplaceAll(string(c), ":", "_")
}

// WordType maps the category to the card word-type tag. Gender only matters for nouns.
func (c Category) WordType(g Gender) WordType {
	switch c {
	case CategoryNoun:
		return NounWordType(g)
	case CategoryVerb, CategoryAuxiliary:
		return WordTypeVerb
	case CategoryAdjective, CategoryAdjIndefinite, CategoryAdjPossessive,
		CategoryAdjInterrogative, CategoryAdjDemonstrative:
		return WordTypeAdjective
	case CategoryAdverb:
		return WordTypeAdverb
	case CategoryPreposition:
		return WordTypePreposition
	case CategoryConjunction:
		return WordTypeConjunction
	case CategoryOnomatopoeia:
		return WordTypeInterjection
	case CategoryPronounPersonal, CategoryPronounIndef, CategoryPronounPossess,
		CategoryPronounRelative, CategoryPronounInterrog, CategoryPronounDemonstr:
		return WordTypePronoun
	case CategoryArticleDefinite, CategoryArticleIndef:
		return WordTypeArticle
	case CategoryNumeral:
		return WordTypeNumeral
	default:
		return WordType(strings.ToLower(string(c)))
	}
}

// WordType is the tag printed on a card.
type WordType string

const (
	WordTypeMasculine    WordType = "m"
	WordTypeFeminine     WordType = "f"
	WordTypeCommonGender WordType = "m/f"
	WordTypeVerb         WordType = "v"
	WordTypeAdjective    WordType = "adj"
	WordTypeAdverb       WordType = "adv"
	WordTypePreposition  WordType = "prep"
	WordTypeConjunction  WordType = "conj"
	WordTypeInterjection WordType = "interj"
	WordTypePronoun      WordType = "pron"
	WordTypeArticle      WordType = "art"
	WordTypeNumeral      WordType = "num"
	WordTypeLocution     WordType = "loc"
	WordTypeExpression   WordType = "expr"
)

// NounWordType picks m, f or m/f; nouns recorded without gender are common-gender.
func NounWordType(g Gender) WordType {
	switch g {
	case GenderMasculine:
		return WordTypeMasculine
	case GenderFeminine:
		return WordTypeFeminine
	default:
		return WordTypeCommonGender
	}
}

// IsNoun reports whether the tag denotes a noun.
func (w WordType) IsNoun() bool {
	return w == WordTypeMasculine || w == WordTypeFeminine || w == WordTypeCommonGender
}
