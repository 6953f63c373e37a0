package lexicon

import (
	"bytes"
	"strings"

	"golang.org/x/text/cases"
)

// LongN is the romanization of ン followed by a long bar (n + combining macron).
const LongN = "n̄"

var longVowels = map[byte]string{
	'a': "ā",
	'i': "ī",
	'u': "ū",
	'e': "ē",
	'o': "ō",
}

// longExpander rewrites long forms to doubled ASCII letters.
var longExpander = strings.NewReplacer(
	"ā", "aa", "ī", "ii", "ū", "uu", "ē", "ee", "ō", "oo", LongN, "nn",
)

// Transliterator converts kana text to a single romaji string.
type Transliterator struct {
	table *Table
}

// NewTransliterator creates a Transliterator over t.
func NewTransliterator(t *Table) *Transliterator {
	return &Transliterator{table: t}
}

// Romaji transliterates text.
//
// Unlike joining the output of Segmenter.Split, long bars become macron vowels
// (パーティー is "pātī") and foreign digraphs are spelled from the digraph rules.
func (t *Transliterator) Romaji(text string) string {
	kana := []rune(text)
	sc := newScanner(t.table, len(kana))
	for i := 0; i < len(kana); i++ {
		if i+1 < len(kana) {
			if head, tail, ok := t.table.Digraph(kana[i], kana[i+1]); ok {
				sc.rule(head, tail)
				i++
				continue
			}
		}
		sc.char(kana[i])
	}

	buf := make([]byte, 0, 2*len(text))
	for _, sl := range sc.done() {
		if sl.long {
			buf = lengthen(buf)
			continue
		}
		buf = append(buf, sl.text...)
	}
	return string(buf)
}

// lengthen applies a long bar to the end of buf.
func lengthen(buf []byte) []byte {
	n := len(buf)
	if n == 0 {
		return append(buf, '-')
	}
	last := buf[n-1]
	if long, ok := longVowels[last]; ok {
		return append(buf[:n-1], long...)
	}
	if last == 'n' {
		return append(buf[:n-1], LongN...)
	}
	if bytes.HasSuffix(buf, []byte(LongN)) {
		return append(buf, 'n')
	}
	for short, long := range longVowels {
		if bytes.HasSuffix(buf, []byte(long)) {
			return append(buf, short)
		}
	}
	return append(buf, '-')
}

// ExpandLong rewrites macron vowels and the long n to doubled ASCII letters.
func ExpandLong(s string) string {
	return longExpander.Replace(s)
}

// EqualRomaji compares two romanizations ignoring case and treating long
// vowels as their doubled-letter spelling, so "Tōkyō" equals "tookyoo".
func EqualRomaji(a, b string) bool {
	fold := cases.Fold()
	a = ExpandLong(fold.String(a))
	b = ExpandLong(fold.String(b))
	return a == b
}
