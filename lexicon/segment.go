package lexicon

import "unicode/utf8"

// Placeholder is emitted for a small tsu that has no consonant to double:
// at the end of text, before a vowel or before another small tsu.
const Placeholder = "~tsu"

// Segmenter splits kana text into romaji syllables.
type Segmenter struct {
	table *Table
}

// NewSegmenter creates a Segmenter over t.
func NewSegmenter(t *Table) *Segmenter {
	return &Segmenter{table: t}
}

// Split returns one romaji entry per character of text.
//
// Digraphs and special characters split what would otherwise be a single
// syllable: きゃ is ["k", "ya"], だって is ["da", "t", "te"] and ハー is
// ["ha", "a"]. Characters outside the table pass through unchanged.
// Joined, the entries spell Transliterator.Romaji with long vowels doubled
// and a leftover long bar kept as ー.
func (s *Segmenter) Split(text string) []string {
	sc := newScanner(s.table, utf8.RuneCountInString(text))
	for _, r := range text {
		sc.char(r)
	}

	slots := sc.done()
	out := make([]string, len(slots))
	for i, sl := range slots {
		out[i] = sl.text
	}
	return out
}
