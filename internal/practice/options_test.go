package practice_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/practice"
)

func TestBuildOptions_DeterministicOrder(t *testing.T) {
	pool := words(6)

	got := practice.BuildOptions(pool[0], pool, &identityShuffler{})
	assert.Equal(t, []string{"D1", "D2", "D3", "D4"}, got)

	got = practice.BuildOptions(pool[0], pool, reverseShuffler{})
	// distractors reversed to [D6 D5 D4 D3 D2], first three kept, then the four reversed
	assert.Equal(t, []string{"D4", "D5", "D6", "D1"}, got)
}

func TestBuildOptions_ExcludesCurrentWordAndDuplicates(t *testing.T) {
	w := word("a", "same")
	pool := []models.VocabularyWord{
		w,
		word("b", "same"),
		word("c", "other"),
		word("d", "other"),
		word("e", "third"),
	}

	got := practice.BuildOptions(w, pool, &identityShuffler{})
	assert.Equal(t, []string{"same", "other", "third"}, got)
}

func TestBuildOptions_SmallPool(t *testing.T) {
	tests := []struct {
		name string
		pool []models.VocabularyWord
		want int
	}{
		{name: "empty pool", pool: nil, want: 1},
		{name: "only the word", pool: words(1), want: 1},
		{name: "one distractor", pool: words(2), want: 2},
		{name: "two distractors", pool: words(3), want: 3},
		{name: "exactly enough", pool: words(4), want: 4},
		{name: "larger pool", pool: words(10), want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := practice.BuildOptions(word("w1", "D1"), tt.pool, rand.New(rand.NewPCG(3, 4)))
			require.Len(t, got, tt.want)
			assert.Equal(t, 1, countOf(got, "D1"))
		})
	}
}

func TestBuildOptions_DistinctEntries(t *testing.T) {
	pool := words(10)
	r := rand.New(rand.NewPCG(42, 42))

	for i := 0; i < 200; i++ {
		w := pool[r.IntN(len(pool))]
		got := practice.BuildOptions(w, pool, r)

		seen := map[string]bool{}
		for _, o := range got {
			require.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
		}
		require.True(t, seen[w.Definition])
	}
}

func TestBuildOptions_CorrectPositionVaries(t *testing.T) {
	pool := words(8)
	r := rand.New(rand.NewPCG(9, 9))

	positions := map[int]int{}
	for i := 0; i < 400; i++ {
		got := practice.BuildOptions(pool[0], pool, r)
		for idx, o := range got {
			if o == "D1" {
				positions[idx]++
			}
		}
	}
	assert.Len(t, positions, practice.OptionCount, "the correct answer lands in every slot")
}
