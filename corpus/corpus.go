// Package corpus holds the frequency-ranked word list that word sets are
// sampled from, with the tooling to read, count and persist it.
package corpus

import (
	"regexp"

	"github.com/ieee0824/kana-go/lexicon"
)

// validRomaji accepts words whose romanization is plain ASCII. Words with
// a dangling small tsu or characters outside the table do not pass.
var validRomaji = regexp.MustCompile(`^[-a-zA-Z0-9]+$`)

// Record is one corpus word and its occurrence count.
type Record struct {
	Text      string `json:"text"`
	Frequency int    `json:"frequency"`
}

// Romanizer converts kana text to romaji.
type Romanizer interface {
	Romaji(text string) string
}

// Corpus is a filtered word list indexed by character.
type Corpus struct {
	records []Record
	byChar  map[rune][]int
}

// New filters records down to the words r can romanize to plain ASCII and
// indexes them by character. Record order is preserved.
//
// The filter checks the romanization with long vowels expanded, so コーヒー
// ("kōhī", checked as "koohii") is kept. A word is listed once per distinct
// character, so いない appears once under い.
func New(records []Record, r Romanizer) *Corpus {
	c := &Corpus{byChar: make(map[rune][]int)}
	for _, rec := range records {
		if !validRomaji.MatchString(lexicon.ExpandLong(r.Romaji(rec.Text))) {
			continue
		}
		i := len(c.records)
		c.records = append(c.records, rec)

		seen := make(map[rune]bool)
		for _, ch := range rec.Text {
			if seen[ch] {
				continue
			}
			seen[ch] = true
			c.byChar[ch] = append(c.byChar[ch], i)
		}
	}
	return c
}

// Len returns the number of words kept.
func (c *Corpus) Len() int { return len(c.records) }

// Word returns the i-th word.
func (c *Corpus) Word(i int) Record { return c.records[i] }

// Candidates returns the indexes of the words containing r, in ascending
// order. The slice is shared and must not be modified.
func (c *Corpus) Candidates(r rune) []int { return c.byChar[r] }

// Records returns a copy of the kept words.
func (c *Corpus) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
