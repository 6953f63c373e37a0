package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a word list from path. Files ending in .db, .sqlite or
// .sqlite3 are opened as a Store; anything else is read as CSV.
func Load(ctx context.Context, path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open corpus: %w", err)
		}
		st, err := OpenStore(ctx, path)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load(ctx)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
