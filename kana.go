// Package kana romanizes Japanese kana and grades romaji typed by a learner.
package kana

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/ieee0824/kana-go/align"
	"github.com/ieee0824/kana-go/lexicon"
)

// Engine converts kana to romaji and compares it with typed answers.
// It is safe for concurrent use.
type Engine struct {
	Table *lexicon.Table

	seg *lexicon.Segmenter
	tr  *lexicon.Transliterator
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTable replaces the standard kana table.
func WithTable(t *lexicon.Table) Option {
	return func(e *Engine) {
		if t != nil {
			e.Table = t
		}
	}
}

// WithLogger sets the logger used to report graded answers.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		Table: lexicon.StandardTable(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.seg = lexicon.NewSegmenter(e.Table)
	e.tr = lexicon.NewTransliterator(e.Table)
	return e
}

// Romaji transliterates kana text, with macrons for long vowels.
func (e *Engine) Romaji(text string) string {
	return e.tr.Romaji(text)
}

// Split returns one romaji syllable per character of text.
func (e *Engine) Split(text string) []string {
	return e.seg.Split(text)
}

// Transliterator returns the engine's transliterator.
func (e *Engine) Transliterator() *lexicon.Transliterator {
	return e.tr
}

// Match is the result of grading an answer against a kana word.
type Match struct {
	IsMatch bool       `json:"is_match"`
	Kana    string     `json:"kana"`
	Input   string     `json:"input"`  // normalized answer
	Actual  string     `json:"actual"` // expected answer, syllables joined
	Romaji  string     `json:"romaji"` // display romanization
	Split   []string   `json:"split"`  // characters of Kana
	Diff    []align.Op `json:"diff"`
	Fails   []string   `json:"fails"` // characters of Kana answered wrong
}

// Match grades input as the romanization of kana. The answer is compared
// ignoring case, long vowels may be typed with macrons ("pātī") and a typed
// "-" stands for a long bar.
func (e *Engine) Match(kana, input string) Match {
	syllables := e.seg.Split(kana)
	norm := strings.ReplaceAll(lexicon.ExpandLong(cases.Fold().String(input)), "-", "ー")
	diff := align.Diff(syllables, norm)

	m := Match{
		IsMatch: true,
		Kana:    kana,
		Input:   norm,
		Actual:  strings.Join(syllables, ""),
		Romaji:  e.tr.Romaji(kana),
		Diff:    diff,
	}
	for _, r := range kana {
		m.Split = append(m.Split, string(r))
	}

	pos := 0
	for _, op := range diff {
		switch op.Kind {
		case align.OpSame:
			pos++
		case align.OpInsert, align.OpChange:
			m.IsMatch = false
			if pos < len(m.Split) {
				m.Fails = append(m.Fails, m.Split[pos])
			}
			pos++
		case align.OpDelete:
			m.IsMatch = false
		}
	}

	e.log.Debug("answer graded",
		zap.String("kana", kana),
		zap.String("input", norm),
		zap.Bool("match", m.IsMatch),
		zap.Int("cost", align.Cost(diff)),
	)
	return m
}
