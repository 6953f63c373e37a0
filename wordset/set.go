package wordset

import (
	"math/rand/v2"

	"github.com/ieee0824/kana-go/corpus"
)

// Set is a selection of words.
type Set struct {
	Words   []corpus.Record `json:"words"`
	Chars   int             `json:"chars"`   // characters in Words
	Missing []string        `json:"missing"` // characters no word covers, one per entry, sorted
}

// Shuffle puts the words in random order.
func (s *Set) Shuffle(r *rand.Rand) {
	r.Shuffle(len(s.Words), func(i, j int) {
		s.Words[i], s.Words[j] = s.Words[j], s.Words[i]
	})
}

// SwapCurrent swaps the word at index with a random word after it and
// returns where the word went. At the last index, or out of range, nothing
// changes and index is returned.
func (s *Set) SwapCurrent(r *rand.Rand, index int) int {
	n := len(s.Words)
	if index < 0 || index >= n-1 {
		return index
	}
	next := index + 1 + r.IntN(n-index-1)
	s.Words[index], s.Words[next] = s.Words[next], s.Words[index]
	return next
}
