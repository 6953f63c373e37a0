package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	kana "github.com/ieee0824/kana-go"
	"github.com/ieee0824/kana-go/corpus"
	"github.com/ieee0824/kana-go/internal/config"
	"github.com/ieee0824/kana-go/wordset"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	corpusPath := flag.String("corpus", "", "word list (CSV or SQLite)")
	charset := flag.String("charset", "", "target characters: hiragana, katakana, all or rare")
	chars := flag.String("chars", "", "explicit target characters (overrides -charset)")
	budget := flag.Int("budget", -1, "character budget, 0 = stop once covered")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	shuffle := flag.Bool("shuffle", false, "shuffle the selected words")
	asJSON := flag.Bool("json", false, "print the set as JSON")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wordset -corpus WORDS.csv [-charset all] [-budget 500]")
		fmt.Fprintln(os.Stderr, "  Selects words covering the target characters.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *corpusPath != "" {
		cfg.CorpusPath = *corpusPath
	}
	if *charset != "" {
		cfg.Charset = *charset
	}
	if *budget >= 0 {
		cfg.Budget = *budget
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if cfg.CorpusPath == "" {
		fmt.Fprintln(os.Stderr, "error: -corpus is required")
		flag.Usage()
		os.Exit(1)
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	target := *chars
	if target == "" {
		target, err = wordset.CharsetByName(cfg.Charset)
		if err != nil {
			log.Fatal("bad charset", zap.Error(err))
		}
	}

	records, err := corpus.Load(context.Background(), cfg.CorpusPath)
	if err != nil {
		log.Fatal("load corpus", zap.String("path", cfg.CorpusPath), zap.Error(err))
	}
	c := corpus.New(records, kana.New().Transliterator())
	log.Info("corpus loaded",
		zap.Int("records", len(records)),
		zap.Int("valid", c.Len()),
	)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(cfg.Seed, cfg.Seed>>1|1)
	set := wordset.NewBuilder(c, src, wordset.WithLogger(log)).Build(target, cfg.Budget)
	if *shuffle {
		set.Shuffle(rand.New(src))
	}

	if *asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(set); err != nil {
			log.Fatal("encode set", zap.Error(err))
		}
		return
	}

	fmt.Printf("\nLoaded %d words with %d chars\n\n", len(set.Words), set.Chars)
	if len(set.Missing) > 0 {
		fmt.Printf("Missing: %s\n\n", strings.Join(set.Missing, " "))
	}
	for _, w := range set.Words {
		fmt.Printf("%s - %d\n", w.Text, w.Frequency)
	}
}
