package lexicon

import (
	"fmt"
	"strings"
	"sync"
)

// Descriptor describes how a single kana character romanizes.
// The concrete types are Gemination, Glide, LongMark, Plain and DigraphCapable.
type Descriptor interface {
	descriptor()
}

// Gemination is the small tsu (ッ/っ) that doubles the following consonant.
type Gemination struct{}

// Glide is a small kana (ャ, ゅ, ォ...) that forms a digraph with the previous syllable.
type Glide struct {
	Suffix string // ya, yu, yo, a, i, u, e, o
}

// LongMark is the katakana bar (ー) lengthening the previous vowel.
type LongMark struct{}

// Plain is a kana with a fixed romaji syllable.
type Plain struct {
	Romaji string
}

// DigraphCapable is a kana that uses a different prefix when followed by a glide
// (e.g. ウ is "u" alone but "w" in ウィ).
type DigraphCapable struct {
	Romaji    string
	AltPrefix string // syllable whose consonant part is used as the digraph prefix
}

func (Gemination) descriptor()     {}
func (Glide) descriptor()          {}
func (LongMark) descriptor()       {}
func (Plain) descriptor()          {}
func (DigraphCapable) descriptor() {}

// Entry binds a character to its descriptor.
type Entry struct {
	Char rune
	Desc Descriptor
}

// DigraphRule spells a two-character kana sequence as a single romaji syllable.
// The second character must be a glide whose suffix ends Romaji.
type DigraphRule struct {
	Kana   string
	Romaji string
}

// digraph is a rule split at the glide: Romaji is head + tail.
type digraph struct {
	head, tail string
}

// Table is an immutable character → descriptor map plus the digraph rules.
// It is safe for concurrent use.
type Table struct {
	chars    map[rune]Descriptor
	rules    []DigraphRule
	digraphs map[string]digraph
}

// NewTable builds a table from entries and digraph rules.
// A character mapped twice is an error, and so is a rule that is not a
// character followed by a glide from entries.
func NewTable(entries []Entry, rules []DigraphRule) (*Table, error) {
	t := &Table{
		chars: make(map[rune]Descriptor, len(entries)),
		rules: append([]DigraphRule(nil), rules...),
	}
	for _, e := range entries {
		if e.Desc == nil {
			return nil, fmt.Errorf("character %q has no descriptor", e.Char)
		}
		if _, ok := t.chars[e.Char]; ok {
			return nil, fmt.Errorf("character %q duplicated in table", e.Char)
		}
		t.chars[e.Char] = e.Desc
	}

	t.digraphs = make(map[string]digraph, len(rules))
	for _, r := range rules {
		kana := []rune(r.Kana)
		if len(kana) != 2 {
			return nil, fmt.Errorf("digraph rule %q: need exactly two characters", r.Kana)
		}
		glide, ok := t.chars[kana[1]].(Glide)
		if !ok {
			return nil, fmt.Errorf("digraph rule %q: %q is not a glide", r.Kana, kana[1])
		}
		head, found := strings.CutSuffix(r.Romaji, glide.Suffix)
		if !found {
			return nil, fmt.Errorf("digraph rule %q: %q does not end in %q", r.Kana, r.Romaji, glide.Suffix)
		}
		if _, ok := t.digraphs[r.Kana]; ok {
			return nil, fmt.Errorf("digraph rule %q duplicated", r.Kana)
		}
		t.digraphs[r.Kana] = digraph{head: head, tail: glide.Suffix}
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(entries []Entry, rules []DigraphRule) *Table {
	t, err := NewTable(entries, rules)
	if err != nil {
		panic("lexicon: " + err.Error())
	}
	return t
}

var standardTable = sync.OnceValue(func() *Table {
	return MustNewTable(kanaEntries, digraphRules)
})

// StandardTable returns the built-in hiragana/katakana table.
func StandardTable() *Table {
	return standardTable()
}

// Lookup returns the descriptor for r.
func (t *Table) Lookup(r rune) (Descriptor, bool) {
	d, ok := t.chars[r]
	return d, ok
}

// Len returns the number of characters in the table.
func (t *Table) Len() int { return len(t.chars) }

// Rules returns a copy of the digraph rules.
func (t *Table) Rules() []DigraphRule {
	return append([]DigraphRule(nil), t.rules...)
}

// Digraph returns the romaji of the rule for the pair a, b split into the
// part written for a and the part written for b.
func (t *Table) Digraph(a, b rune) (head, tail string, ok bool) {
	if len(t.digraphs) == 0 {
		return "", "", false
	}
	dg, ok := t.digraphs[string([]rune{a, b})]
	return dg.head, dg.tail, ok
}
