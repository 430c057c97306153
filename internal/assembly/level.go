package assembly

import "github.com/eslsoft/vocdeck/internal/entity"

var majorWordTypes = map[entity.WordType]struct{}{
	entity.WordTypeMasculine:    {},
	entity.WordTypeFeminine:     {},
	entity.WordTypeCommonGender: {},
	entity.WordTypeVerb:         {},
	entity.WordTypeAdjective:    {},
}

// IsMajor reports whether the word type is split into level files.
func IsMajor(wt entity.WordType) bool {
	_, ok := majorWordTypes[wt]
	return ok
}

// AssignLevels sets the level of each entry from its position in the sorted
// vocabulary. Minor word types always land in LevelOther.
func AssignLevels(vocab []entity.VocabEntry, boundaries []entity.LevelBoundary) {
	for rank := range vocab {
		if !IsMajor(vocab[rank].WordType) {
			vocab[rank].Level = entity.LevelOther
			continue
		}
		vocab[rank].Level = levelForRank(rank, boundaries)
	}
}

func levelForRank(rank int, boundaries []entity.LevelBoundary) entity.Level {
	for _, b := range boundaries {
		if b.UpperRank == 0 || rank < b.UpperRank {
			return b.Level
		}
	}
	return entity.LevelOther
}

// SplitByLevel groups the vocabulary by level, in boundary order followed by LevelOther.
func SplitByLevel(vocab []entity.VocabEntry, boundaries []entity.LevelBoundary) []entity.LevelBucket {
	buckets := make([]entity.LevelBucket, 0, len(boundaries)+1)
	index := make(map[entity.Level]int, len(boundaries)+1)
	for _, b := range boundaries {
		index[b.Level] = len(buckets)
		buckets = append(buckets, entity.LevelBucket{Level: b.Level})
	}
	if _, ok := index[entity.LevelOther]; !ok {
		index[entity.LevelOther] = len(buckets)
		buckets = append(buckets, entity.LevelBucket{Level: entity.LevelOther})
	}
	for _, v := range vocab {
		i, ok := index[v.Level]
		if !ok {
			i = index[entity.LevelOther]
		}
		buckets[i].Entries = append(buckets[i].Entries, v)
	}
	return buckets
}
