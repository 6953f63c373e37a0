package corpus

import (
	"sort"
	"strings"
)

// Counter accumulates word frequencies from tokenized sentences.
type Counter struct {
	counts map[string]int
	total  int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// AddSentence adds one tokenized sentence. Empty tokens are ignored.
func (c *Counter) AddSentence(words []string) {
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		c.counts[w]++
		c.total++
	}
}

// Len returns the number of distinct words seen.
func (c *Counter) Len() int { return len(c.counts) }

// Total returns the number of tokens seen.
func (c *Counter) Total() int { return c.total }

// Records returns the counted words, most frequent first. Ties are ordered
// by text.
func (c *Counter) Records() []Record {
	out := make([]Record, 0, len(c.counts))
	for w, n := range c.counts {
		out = append(out, Record{Text: w, Frequency: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Text < out[j].Text
	})
	return out
}
