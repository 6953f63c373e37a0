package corpus

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ieee0824/kana-go/lexicon"
)

func newTestCorpus(records []Record) *Corpus {
	return New(records, lexicon.NewTransliterator(lexicon.StandardTable()))
}

func TestNewFiltersInvalid(t *testing.T) {
	c := newTestCorpus([]Record{
		{"ねこ", 10},
		{"猫", 5},     // kanji passes through unchanged
		{"きっ", 3},    // dangling small tsu
		{"コーヒー", 8}, // long vowels are valid
		{"abc", 1},
		{"a b", 1},
	})

	var got []string
	for _, r := range c.Records() {
		got = append(got, r.Text)
	}
	want := []string{"ねこ", "コーヒー", "abc"}
	if !slices.Equal(got, want) {
		t.Errorf("Records() = %q, want %q", got, want)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if w := c.Word(1); w.Text != "コーヒー" || w.Frequency != 8 {
		t.Errorf("Word(1) = %+v", w)
	}
}

func TestCandidates(t *testing.T) {
	c := newTestCorpus([]Record{
		{"ここ", 1},
		{"こねこ", 1},
		{"ねこ", 1},
		{"いぬ", 1},
	})

	tests := []struct {
		char rune
		want []int
	}{
		{'こ', []int{0, 1, 2}},
		{'ね', []int{1, 2}},
		{'ぬ', []int{3}},
		{'あ', nil},
	}
	for _, tt := range tests {
		if got := c.Candidates(tt.char); !slices.Equal(got, tt.want) {
			t.Errorf("Candidates(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}

func TestReadCSV(t *testing.T) {
	in := "rank,word,count\n1,の,100\n\n2,ねこ,42\n3,いぬ, 7\n"
	got, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{"の", 100}, {"ねこ", 42}, {"いぬ", 7}}
	if !slices.Equal(got, want) {
		t.Errorf("ReadCSV = %v, want %v", got, want)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bad_count", "rank,word,count\n1,ねこ,x\n", "line 2"},
		{"short_line", "rank,word,count\n1,ねこ,1\n2,いぬ\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := []Record{{"の", 100}, {"ねこ", 42}, {"コーヒー", 7}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "rank,word,count\n1,の,100\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, records) {
		t.Errorf("round trip = %v, want %v", got, records)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.db")

	st, err := OpenStore(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if err := st.Save(ctx, []Record{{"あ", 1}}); err != nil {
		t.Fatal(err)
	}
	records := []Record{{"の", 100}, {"ねこ", 42}, {"いぬ", 42}}
	if err := st.Save(ctx, records); err != nil {
		t.Fatal(err)
	}

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, records) {
		t.Errorf("Load() = %v, want %v", got, records)
	}
}

func TestOpenStoreEmptyPath(t *testing.T) {
	if _, err := OpenStore(context.Background(), " "); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	records := []Record{{"ねこ", 2}, {"いぬ", 1}}

	csvPath := filepath.Join(dir, "words.csv")
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(csvPath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	dbPath := filepath.Join(dir, "words.sqlite")
	st, err := OpenStore(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, records); err != nil {
		t.Fatal(err)
	}
	st.Close()

	for _, path := range []string{csvPath, dbPath} {
		got, err := Load(ctx, path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if !slices.Equal(got, records) {
			t.Errorf("Load(%s) = %v, want %v", path, got, records)
		}
	}

	if _, err := Load(ctx, filepath.Join(dir, "missing.db")); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	c.AddSentence([]string{"ねこ", "が", "いる"})
	c.AddSentence([]string{"いぬ", "が", "いる"})
	c.AddSentence([]string{"ねこ", "", " "})
	c.AddSentence(nil)

	want := []Record{{"いる", 2}, {"が", 2}, {"ねこ", 2}, {"いぬ", 1}}
	if got := c.Records(); !slices.Equal(got, want) {
		t.Errorf("Records() = %v, want %v", got, want)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	if c.Total() != 7 {
		t.Errorf("Total() = %d, want 7", c.Total())
	}
}
