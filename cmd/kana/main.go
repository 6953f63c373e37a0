package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	kana "github.com/ieee0824/kana-go"
	"github.com/ieee0824/kana-go/align"
	"github.com/ieee0824/kana-go/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	split := flag.Bool("split", false, "print one syllable per character")
	answer := flag.String("answer", "", "grade this romaji against each word")
	asJSON := flag.Bool("json", false, "print grading results as JSON")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: kana [-split] [-answer ROMAJI] WORD...")
		fmt.Fprintln(os.Stderr, "  Prints the romaji of each kana word.")
		fmt.Fprintln(os.Stderr, "  With -answer, grades the answer and prints the diff.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	e := kana.New(kana.WithLogger(log))

	answered := isFlagSet("answer")
	enc := json.NewEncoder(os.Stdout)
	failed := false
	for _, word := range flag.Args() {
		if !answered {
			if *split {
				fmt.Printf("%s\t%s\n", word, strings.Join(e.Split(word), " "))
			} else {
				fmt.Printf("%s\t%s\n", word, e.Romaji(word))
			}
			continue
		}

		m := e.Match(word, *answer)
		if !m.IsMatch {
			failed = true
		}
		if *asJSON {
			if err := enc.Encode(m); err != nil {
				log.Fatal("encode result", zap.Error(err))
			}
			continue
		}
		printMatch(m)
	}
	if failed {
		os.Exit(2)
	}
}

func printMatch(m kana.Match) {
	status := "ok"
	if !m.IsMatch {
		status = "wrong"
	}
	fmt.Printf("%s\t%s\t%s (%s)\n", m.Kana, m.Input, status, m.Romaji)
	if m.IsMatch {
		return
	}
	ops := make([]string, len(m.Diff))
	for i, op := range m.Diff {
		ops[i] = op.String()
	}
	fmt.Printf("  diff:  %s\n", strings.Join(ops, " "))
	fmt.Printf("  cost:  %d\n", align.Cost(m.Diff))
	fmt.Printf("  fails: %s\n", strings.Join(m.Fails, " "))
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
