package entity

// PipelineOptions is the immutable configuration handed to every pipeline stage.
type PipelineOptions struct {
	SpokenWeight       float64
	WrittenWeight      float64
	ReviewThreshold    float64
	FilteredCategories []Category
	TopN               int
	MinCategorySize    int
	MinFrequency       float64
	Levels             []LevelBoundary
}

// LevelBoundary assigns ranks below UpperRank (exclusive) to Level. A zero
// UpperRank means unbounded.
type LevelBoundary struct {
	Level     Level
	UpperRank int
}

// DefaultPipelineOptions mirrors the configuration defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		SpokenWeight:       0.6,
		WrittenWeight:      0.4,
		ReviewThreshold:    0.67,
		FilteredCategories: []Category{CategoryVerb, CategoryNoun, CategoryAdjective, CategoryAdverb},
		TopN:               10000,
		MinCategorySize:    100,
		Levels:             DefaultLevels(),
	}
}

// DefaultLevels splits ranks at 1000, 3000 and 5000.
func DefaultLevels() []LevelBoundary {
	return []LevelBoundary{
		{Level: LevelA1A2, UpperRank: 1000},
		{Level: LevelB1, UpperRank: 3000},
		{Level: LevelB2, UpperRank: 5000},
		{Level: LevelC1},
	}
}
