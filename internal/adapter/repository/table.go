package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/vocdeck/internal/entity"
)

// tableRow maps header names to cell values. Short rows yield "" for missing cells.
type tableRow map[string]string

func (r tableRow) float(name string) (float64, bool) {
	raw := strings.TrimSpace(r[name])
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// readTable reads a comma-separated table with a header row. A missing file
// returns ok=false and no error; missing required columns are structural.
func readTable(path string, required ...string) ([]tableRow, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := decodeTable(f, filepath.Base(path), required...)
	if err != nil {
		return nil, true, err
	}
	return rows, true, nil
}

func decodeTable(r io.Reader, source string, required ...string) ([]tableRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &entity.MissingColumnsError{Source: source, Columns: required}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", source, err)
	}
	header = lo.Map(header, func(h string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	})
	if missing := lo.Without(required, header...); len(missing) > 0 {
		return nil, &entity.MissingColumnsError{Source: source, Columns: missing}
	}

	var rows []tableRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		row := make(tableRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeTable writes header and rows to path, creating parent directories.
func writeTable(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encodeTable(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func encodeTable(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

func formatFreq(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
