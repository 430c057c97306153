package entity

// ResolvedForms holds the canonical gender/number forms of one lemma group.
// An empty slot means the form is absent. Observed keeps the selected
// spelling for every cell present in the group.
type ResolvedForms struct {
	Lemma        string
	MascSingular string
	FemSingular  string
	MascPlural   string
	FemPlural    string
	Observed     map[Cell]string
	Display      string
}

// Slots returns MS, FS, MP, FP in order.
func (f ResolvedForms) Slots() [4]string {
	return [4]string{f.MascSingular, f.FemSingular, f.MascPlural, f.FemPlural}
}

// Distinct lists the non-empty slot values without repetition, in slot order.
func (f ResolvedForms) Distinct() []string {
	seen := make(map[string]struct{}, 4)
	out := make([]string, 0, 4)
	for _, v := range f.Slots() {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ObservedForm returns the spelling observed for the exact cell, if any.
func (f ResolvedForms) ObservedForm(g Gender, n Number) string {
	if f.Observed == nil {
		return ""
	}
	return f.Observed[Cell{Gender: g, Number: n}]
}

// DisplayOrLemma never returns an empty string.
func (f ResolvedForms) DisplayOrLemma() string {
	if f.Display != "" {
		return f.Display
	}
	return f.Lemma
}

// VerbForms is the resolved paradigm subset used on cards.
type VerbForms struct {
	Infinitive        string
	PastParticipleM   string
	PastParticipleF   string
	PresentParticiple string
	Display           string
}
