package practice

import "github.com/vytor/vocabflash/internal/models"

// OptionCount is the number of choices shown when the pool is large enough.
const OptionCount = 4

// BuildOptions returns the word's definition plus up to OptionCount-1
// distractor definitions drawn from pool, in shuffled order.
//
// Distractors exclude the word itself and any definition already present,
// so the correct definition appears exactly once. When fewer than
// OptionCount-1 distractors exist the result is shorter; it always holds
// at least the correct definition.
func BuildOptions(word models.VocabularyWord, pool []models.VocabularyWord, rng Shuffler) []string {
	seen := map[string]struct{}{word.Definition: {}}
	candidates := make([]string, 0, len(pool))
	for _, w := range pool {
		if w.ID == word.ID {
			continue
		}
		if _, dup := seen[w.Definition]; dup {
			continue
		}
		seen[w.Definition] = struct{}{}
		candidates = append(candidates, w.Definition)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := min(len(candidates), OptionCount-1)

	options := make([]string, 0, n+1)
	options = append(options, word.Definition)
	options = append(options, candidates[:n]...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
