// Package wordset selects example words covering a set of kana.
package wordset

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/ieee0824/kana-go/corpus"
)

// Builder draws word sets from a corpus.
type Builder struct {
	corpus *corpus.Corpus
	src    rand.Source
	rng    *rand.Rand
	log    *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used to report builds.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBuilder creates a Builder over c. All random choices are drawn from
// src, so equal seeds give equal sets.
func NewBuilder(c *corpus.Corpus, src rand.Source, opts ...Option) *Builder {
	b := &Builder{
		corpus: c,
		src:    src,
		rng:    rand.New(src),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build selects words until every character of charset is covered.
//
// With a budget above zero, coverage stops once the selected words hold
// budget characters, and the set is then filled with more words drawn per
// character until the budget is met or no unselected word is left.
// Characters no word can cover are reported in Missing.
func (b *Builder) Build(charset string, budget int) *Set {
	var required []rune
	for _, r := range charset {
		if !slices.Contains(required, r) {
			required = append(required, r)
		}
	}

	selected := make(map[int]bool)
	var missing []rune
	chars := 0

	add := func(i int) {
		selected[i] = true
		chars += utf8.RuneCountInString(b.corpus.Word(i).Text)
	}

	for len(required) > 0 && (budget == 0 || chars < budget) {
		// Pick the character first so frequent characters are not favored.
		k := b.rng.IntN(len(required))
		elem := required[k]
		required = slices.Delete(required, k, k+1)

		i, ok := b.choose(selected, b.corpus.Candidates(elem))
		if !ok {
			missing = append(missing, elem)
			continue
		}
		add(i)
		word := b.corpus.Word(i).Text
		required = slices.DeleteFunc(required, func(r rune) bool {
			return strings.ContainsRune(word, r)
		})
	}
	missing = append(missing, required...)

	letters := []rune(charset)
	for changed := true; changed && chars < budget; {
		changed = false
		b.rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		for _, r := range letters {
			i, ok := b.choose(selected, b.corpus.Candidates(r))
			if !ok {
				continue
			}
			add(i)
			changed = true
			if chars >= budget {
				break
			}
		}
	}

	indexes := make([]int, 0, len(selected))
	for i := range selected {
		indexes = append(indexes, i)
	}
	slices.Sort(indexes)

	set := &Set{Chars: chars}
	for _, i := range indexes {
		set.Words = append(set.Words, b.corpus.Word(i))
	}
	slices.Sort(missing)
	for _, r := range slices.Compact(missing) {
		set.Missing = append(set.Missing, string(r))
	}

	b.log.Debug("word set built",
		zap.Int("words", len(set.Words)),
		zap.Int("chars", set.Chars),
		zap.Int("budget", budget),
		zap.Strings("missing", set.Missing),
	)
	return set
}

// choose picks one unselected candidate with probability proportional to its
// frequency. It fails when no candidate has a positive frequency.
func (b *Builder) choose(selected map[int]bool, candidates []int) (int, bool) {
	var idx []int
	var weights []float64
	for _, i := range candidates {
		if selected[i] {
			continue
		}
		idx = append(idx, i)
		weights = append(weights, float64(max(b.corpus.Word(i).Frequency, 0)))
	}
	if len(idx) == 0 {
		return 0, false
	}
	k, ok := sampleuv.NewWeighted(weights, b.src).Take()
	if !ok {
		return 0, false
	}
	return idx[k], true
}
