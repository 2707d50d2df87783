package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lo "github.com/samber/lo"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// Table is a header plus string rows, the unit every artifact is read and
// written as.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable loads a whole CSV file. Files are small, so everything is read
// at once. Short rows are padded to the header width.
func ReadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return readTable(f)
}

func readTable(rd io.Reader) (Table, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	t := Table{Header: records[0]}
	for _, rec := range records[1:] {
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		for len(rec) < len(t.Header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// Objects returns one map per row keyed by header. Values stay strings to
// avoid lossy type coercion.
func (t Table) Objects() []map[string]string {
	res := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := make(map[string]string, len(t.Header))
		for j := 0; j < len(t.Header) && j < len(row); j++ {
			obj[t.Header[j]] = row[j]
		}
		res = append(res, obj)
	}
	return res
}

// Require checks that every column in cols is present, matching headers
// case-insensitively.
func (t Table) Require(name string, cols ...string) error {
	idx := indexMap(t.Header)
	missing := lo.Filter(cols, func(c string, _ int) bool {
		_, ok := idx[normalizeHeader(c)]
		return !ok
	})
	if len(missing) > 0 {
		return fmt.Errorf("%s %w: %s", name, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// WriteTable writes t to path, creating parent directories.
func WriteTable(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	return w.Error()
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		m[normalizeHeader(h)] = i
	}
	return m
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.ToLower(strings.TrimPrefix(h, "\ufeff")))
}
