package lexicon

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	table := StandardTable()

	tests := []struct {
		char rune
		want Descriptor
	}{
		{'ー', LongMark{}},
		{'ッ', Gemination{}},
		{'っ', Gemination{}},
		{'そ', Plain{"so"}},
		{'シ', Plain{"shi"}},
		{'ヂ', Plain{"dji"}},
		{'ウ', DigraphCapable{"u", "wa"}},
		{'ク', DigraphCapable{"ku", "kwa"}},
		{'ゅ', Glide{"yu"}},
		{'ォ', Glide{"o"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			got, ok := table.Lookup(tt.char)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.char)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %#v, want %#v", tt.char, got, tt.want)
			}
		})
	}

	if _, ok := table.Lookup('x'); ok {
		t.Error("Lookup('x') should not be found")
	}
}

func TestStandardTableShared(t *testing.T) {
	if StandardTable() != StandardTable() {
		t.Error("StandardTable should return the same table")
	}
	// 2 small tsu, 16 small kana, ヴ, ー, 2 x 71 syllables
	if got := StandardTable().Len(); got != 162 {
		t.Errorf("Len() = %d, want 162", got)
	}
}

func TestNewTableDuplicate(t *testing.T) {
	_, err := NewTable([]Entry{c('あ', "a"), c('い', "i"), c('あ', "o")}, nil)
	if err == nil {
		t.Fatal("expected error for duplicated character")
	}
	if !strings.Contains(err.Error(), "duplicated") {
		t.Errorf("error = %v, want duplicated", err)
	}
}

func TestNewTableBadRule(t *testing.T) {
	entries := []Entry{c('フ', "fu"), c('ア', "a"), g('ァ', "a")}

	tests := []struct {
		name string
		rule DigraphRule
	}{
		{"single", DigraphRule{"フ", "fu"}},
		{"triple", DigraphRule{"フファ", "ffa"}},
		{"not_glide", DigraphRule{"フア", "fa"}},
		{"wrong_romaji", DigraphRule{"ファ", "fi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(entries, []DigraphRule{tt.rule}); err == nil {
				t.Errorf("NewTable(%q) should fail", tt.rule.Kana)
			}
		})
	}

	if _, err := NewTable(entries, []DigraphRule{{"ファ", "fa"}, {"ファ", "fa"}}); err == nil {
		t.Error("expected error for duplicated rule")
	}
}

func TestMustNewTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewTable should panic on duplicates")
		}
	}()
	MustNewTable([]Entry{bar('ー'), bar('ー')}, nil)
}

func TestDigraph(t *testing.T) {
	table := StandardTable()

	tests := []struct {
		pair       string
		head, tail string
		ok         bool
	}{
		{"ファ", "f", "a", true},
		{"ティ", "t", "i", true},
		{"クォ", "kw", "o", true},
		{"フュ", "f", "yu", true},
		{"シェ", "sh", "e", true},
		{"イェ", "y", "e", true},
		{"キャ", "", "", false},
		{"アイ", "", "", false},
	}
	for _, tt := range tests {
		pair := []rune(tt.pair)
		head, tail, ok := table.Digraph(pair[0], pair[1])
		if head != tt.head || tail != tt.tail || ok != tt.ok {
			t.Errorf("Digraph(%q) = %q, %q, %v, want %q, %q, %v",
				tt.pair, head, tail, ok, tt.head, tt.tail, tt.ok)
		}
	}

	if n := len(table.Rules()); n != 32 {
		t.Errorf("len(Rules()) = %d, want 32", n)
	}
}
