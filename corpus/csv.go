package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the first line of a frequency list.
var csvHeader = []string{"rank", "word", "count"}

// ReadCSV parses a frequency list: a header line followed by
// "rank,word,count" lines. Blank lines are skipped and the rank is ignored.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read frequency list: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) < 3 {
			return nil, fmt.Errorf("line %d: expected rank,word,count", line)
		}
		count, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad count %q: %w", line, row[2], err)
		}
		records = append(records, Record{Text: row[1], Frequency: count})
	}
	return records, nil
}

// WriteCSV writes records in the format read by ReadCSV, ranked from 1.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, rec := range records {
		row := []string{strconv.Itoa(i + 1), rec.Text, strconv.Itoa(rec.Frequency)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %q: %w", rec.Text, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
