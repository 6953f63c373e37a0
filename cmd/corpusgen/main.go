package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/ieee0824/kana-go/corpus"
	"github.com/ieee0824/kana-go/internal/config"
	"github.com/ieee0824/kana-go/lexicon"
)

// sentencesPerCall bounds the sentences handed to one MeCab process.
const sentencesPerCall = 1000

func main() {
	outPath := flag.String("out", "", "SQLite database to write (default: CSV on stdout)")
	useMecab := flag.Bool("mecab", false, "tokenize with MeCab instead of whitespace")
	kanaOnly := flag.Bool("kana-only", true, "count only words written entirely in kana")
	minCount := flag.Int("min-count", 1, "drop words seen fewer times")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: corpusgen [-mecab] [-out words.db] < input.txt > words.csv")
		fmt.Fprintln(os.Stderr, "  Reads Japanese text from stdin and counts word frequencies.")
		fmt.Fprintln(os.Stderr, "  Handles WikiExtractor output (strips <doc> tags, splits on 。).")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *verbose {
		cfg.LogLevel = "debug"
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *useMecab {
		if _, err := exec.LookPath("mecab"); err != nil {
			log.Fatal("mecab not found in PATH (install: brew install mecab mecab-ipadic)")
		}
	}

	counter := corpus.NewCounter()
	tc := &textCounter{
		counter:  counter,
		tokenize: whitespace,
		perCall:  sentencesPerCall,
		log:      log,
	}
	if *useMecab {
		tc.tokenize = mecab
	}
	if *kanaOnly {
		tc.table = lexicon.StandardTable()
	}
	if err := tc.count(os.Stdin); err != nil {
		log.Error("read input", zap.Error(err))
	}

	records := counter.Records()
	for i, rec := range records {
		if rec.Frequency < *minCount {
			records = records[:i]
			break
		}
	}

	if *outPath == "" {
		w := bufio.NewWriter(os.Stdout)
		if err := corpus.WriteCSV(w, records); err != nil {
			log.Fatal("write csv", zap.Error(err))
		}
		if err := w.Flush(); err != nil {
			log.Fatal("write csv", zap.Error(err))
		}
	} else {
		ctx := context.Background()
		st, err := corpus.OpenStore(ctx, *outPath)
		if err != nil {
			log.Fatal("open store", zap.Error(err))
		}
		if err := st.Save(ctx, records); err != nil {
			st.Close()
			log.Fatal("save", zap.Error(err))
		}
		if err := st.Close(); err != nil {
			log.Fatal("close store", zap.Error(err))
		}
	}

	log.Info("counted",
		zap.Int("sentences", tc.sentences),
		zap.Int("tokens", counter.Total()),
		zap.Int("words", len(records)),
	)
}

// textCounter counts the words of WikiExtractor style text: <doc> tags are
// skipped and every line is cut into sentences at 。.
type textCounter struct {
	counter  *corpus.Counter
	tokenize func(sentences []string) ([][]string, error)
	table    *lexicon.Table // keep only words made of its characters; nil keeps all
	perCall  int            // sentences per tokenize call
	log      *zap.Logger

	sentences int
	queue     []string
}

func (tc *textCounter) count(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || isDocTag(line) {
			continue
		}
		for sent := range strings.SplitSeq(line, "。") {
			if sent = strings.TrimSpace(sent); sent == "" {
				continue
			}
			tc.sentences++
			tc.queue = append(tc.queue, sent)
			if len(tc.queue) >= max(tc.perCall, 1) {
				tc.drain()
			}
		}
	}
	tc.drain()
	return sc.Err()
}

// drain tokenizes the queued sentences. A failed call drops them.
func (tc *textCounter) drain() {
	if len(tc.queue) == 0 {
		return
	}
	tokenized, err := tc.tokenize(tc.queue)
	tc.queue = tc.queue[:0]
	if err != nil {
		tc.log.Warn("tokenize", zap.Error(err))
		return
	}
	for _, words := range tokenized {
		if tc.table != nil {
			words = kanaWords(tc.table, words)
		}
		tc.counter.AddSentence(words)
	}
}

// isDocTag reports whether line is a WikiExtractor <doc ...> or </doc> tag.
func isDocTag(line string) bool {
	if line == "</doc>" {
		return true
	}
	return strings.HasPrefix(line, "<doc") && strings.IndexByte(line, '>') == len(line)-1
}

func whitespace(sentences []string) ([][]string, error) {
	out := make([][]string, len(sentences))
	for i, s := range sentences {
		out[i] = strings.Fields(s)
	}
	return out, nil
}

// kanaWords keeps the words made only of characters in the table.
func kanaWords(t *lexicon.Table, words []string) []string {
	out := words[:0:0]
	for _, w := range words {
		if isKana(t, w) {
			out = append(out, w)
		}
	}
	return out
}

func isKana(t *lexicon.Table, w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if _, ok := t.Lookup(r); !ok {
			return false
		}
	}
	return true
}

// mecab tokenizes sentences with one MeCab process; -Owakati writes one
// line of space separated words per input line.
func mecab(sentences []string) ([][]string, error) {
	cmd := exec.Command("mecab", "-Owakati")
	cmd.Stdin = strings.NewReader(strings.Join(sentences, "\n"))
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("mecab: %w", err)
	}

	var result [][]string
	for line := range strings.Lines(string(out)) {
		result = append(result, strings.Fields(line))
	}
	return result, nil
}
