package lexicon

import (
	"strings"
	"unicode/utf8"
)

// slot is the romaji written for one kana character. A long slot stands for
// a long bar; text then holds the echoed vowel.
type slot struct {
	text string
	long bool
}

// scanner turns kana characters into one slot per character. Segmenter and
// Transliterator share it so that both agree on small tsu, long bars and glides.
type scanner struct {
	table *Table
	out   []slot

	// pending is set while a small tsu waits for the next syllable.
	pending bool
	// dupAt is the index of the slot written for a small tsu right before the
	// last slot, or -1.
	dupAt int
	// prefix is the syllable used to build a digraph with the last slot.
	// Empty means the last slot itself is used.
	prefix string
}

func newScanner(t *Table, size int) *scanner {
	return &scanner{table: t, out: make([]slot, 0, size), dupAt: -1}
}

// push appends a syllable, resolving a waiting small tsu first.
func (s *scanner) push(v string) {
	s.dupAt = -1
	if s.pending {
		s.out = append(s.out, slot{text: geminate(v)})
		s.dupAt = len(s.out) - 1
		s.pending = false
	}
	s.out = append(s.out, slot{text: v})
}

// flush writes a waiting small tsu as Placeholder.
func (s *scanner) flush() {
	if s.pending {
		s.out = append(s.out, slot{text: Placeholder})
		s.pending = false
	}
}

// char scans a single character.
func (s *scanner) char(r rune) {
	desc, ok := s.table.Lookup(r)
	if !ok {
		s.push(string(r))
		s.prefix = ""
		return
	}

	switch v := desc.(type) {
	case Plain:
		s.push(v.Romaji)
		s.prefix = v.Romaji

	case DigraphCapable:
		s.push(v.Romaji)
		s.prefix = v.AltPrefix

	case Gemination:
		// Only the last of consecutive small tsu doubles the consonant.
		s.flush()
		s.pending = true
		s.prefix = ""
		s.dupAt = -1

	case LongMark:
		s.flush()
		echo := string(r)
		if lr, ok := s.lastRune(); ok && strings.ContainsRune("aiueon", lr) {
			echo = string(lr)
		}
		s.out = append(s.out, slot{text: echo, long: true})
		s.prefix = ""
		s.dupAt = -1

	case Glide:
		s.glide(v.Suffix)
	}
}

// glide attaches a small kana to the previous syllable: the previous slot
// keeps the consonant and the glide slot gets the suffix.
func (s *scanner) glide(suffix string) {
	n := len(s.out)
	if s.pending || n == 0 {
		s.flush()
		s.out = append(s.out, slot{text: suffix})
		s.prefix = ""
		s.dupAt = -1
		return
	}

	base := s.prefix
	if base == "" {
		base = s.out[n-1].text
	}
	head := trimLastRune(base)

	if strings.HasPrefix(suffix, "y") && dropsGlide(head) {
		suffix = suffix[1:]
	}
	s.out[n-1] = slot{text: head}

	// The small tsu before the syllable follows the new consonant.
	if head != "" && s.dupAt >= 0 && s.dupAt == n-2 {
		s.out[n-2].text = doubling(head)
	}

	s.out = append(s.out, slot{text: suffix})
	s.prefix = ""
	s.dupAt = -1
}

// rule scans a digraph rule match spelled head + tail.
func (s *scanner) rule(head, tail string) {
	s.push(head)
	s.out = append(s.out, slot{text: tail})
	s.prefix = ""
	s.dupAt = -1
}

// done flushes a trailing small tsu and returns the slots.
func (s *scanner) done() []slot {
	s.flush()
	return s.out
}

func (s *scanner) lastRune() (rune, bool) {
	for i := len(s.out) - 1; i >= 0; i-- {
		if t := s.out[i].text; t != "" {
			r, _ := utf8.DecodeLastRuneInString(t)
			return r, true
		}
	}
	return 0, false
}

// geminate returns what a small tsu writes before syllable v.
// A syllable without a leading consonant cannot be doubled.
func geminate(v string) string {
	if v == "" || v[0] == Placeholder[0] || isVowel(v[0]) {
		return Placeholder
	}
	return doubling(v)
}

// doubling returns the consonant written for a small tsu before syllable s.
// The ch sound doubles as t (こっち is "kotchi").
func doubling(s string) string {
	if strings.HasPrefix(s, "ch") {
		return "t"
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

// dropsGlide reports whether a y-glide is silent after prefix (sha, ja, cha, yo).
func dropsGlide(prefix string) bool {
	return strings.HasSuffix(prefix, "ch") ||
		strings.HasSuffix(prefix, "sh") ||
		strings.HasSuffix(prefix, "j") ||
		strings.HasSuffix(prefix, "y")
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
