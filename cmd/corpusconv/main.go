package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	kana "github.com/ieee0824/kana-go"
	"github.com/ieee0824/kana-go/corpus"
	"github.com/ieee0824/kana-go/internal/config"
)

func main() {
	outPath := flag.String("out", "", "SQLite database to write (default: CSV on stdout)")
	filter := flag.Bool("filter", false, "drop words that do not romanize to plain ASCII")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: corpusconv [-out words.db] <frequency-csv-files...>")
		fmt.Fprintln(os.Stderr, "  Merges rank,word,count lists, summing counts of repeated words.")
		fmt.Fprintln(os.Stderr, "  Supports glob patterns: corpusconv /path/to/lists/*.csv")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

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

	// Expand glob patterns
	var files []string
	for _, arg := range flag.Args() {
		matches, err := filepath.Glob(arg)
		if err != nil {
			log.Fatal("bad pattern", zap.String("pattern", arg), zap.Error(err))
		}
		if matches == nil {
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}

	ctx := context.Background()
	counts := make(map[string]int)
	for _, path := range files {
		records, err := corpus.Load(ctx, path)
		if err != nil {
			log.Warn("skip file", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, rec := range records {
			counts[rec.Text] += rec.Frequency
		}
		log.Debug("read", zap.String("path", path), zap.Int("records", len(records)))
	}

	records := make([]corpus.Record, 0, len(counts))
	for w, n := range counts {
		records = append(records, corpus.Record{Text: w, Frequency: n})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Frequency != records[j].Frequency {
			return records[i].Frequency > records[j].Frequency
		}
		return records[i].Text < records[j].Text
	})
	if *filter {
		records = corpus.New(records, kana.New().Transliterator()).Records()
	}

	if *outPath == "" {
		if err := corpus.WriteCSV(os.Stdout, records); err != nil {
			log.Fatal("write csv", zap.Error(err))
		}
	} else {
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

	log.Info("converted",
		zap.Int("words", len(records)),
		zap.Int("files", len(files)),
	)
}
