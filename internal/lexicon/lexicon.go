// Package lexicon parses the tab-separated Lexique table into typed rows.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/eslsoft/vocdeck/internal/entity"
	"github.com/eslsoft/vocdeck/internal/frequency"
)

// Column names of the lexicon header.
const (
	ColOrtho        = "ortho"
	ColLemma        = "lemme"
	ColCategory     = "cgram"
	ColGender       = "genre"
	ColNumber       = "nombre"
	ColSpokenLemma  = "freqlemfilms2"
	ColWrittenLemma = "freqlemlivres"
	ColIsLemma      = "islem"
	ColHomographs   = "nbhomogr"
	ColInflection   = "infover"
	ColSpokenForm   = "freqfilms2"
	ColWrittenForm  = "freqlivres"
)

// RequiredColumns must all be present in the header.
var RequiredColumns = []string{
	ColOrtho, ColLemma, ColCategory, ColGender, ColNumber,
	ColSpokenLemma, ColWrittenLemma, ColIsLemma, ColHomographs,
}

const maxLineBytes = 1 << 20

// Lexicon is the parsed table plus load statistics.
type Lexicon struct {
	Rows    []entity.LexicalRow
	// Coerced counts numeric cells that failed to parse and were set to zero.
	Coerced int
	// Skipped counts lines without an orthographic form or lemma.
	Skipped int
}

// Parse reads a header line followed by data lines. Missing required columns
// abort before any row is read; malformed numbers become zero.
func Parse(r io.Reader, source string) (*Lexicon, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read lexicon header: %w", err)
		}
		return nil, entity.ErrEmptyLexicon
	}
	index, err := headerIndex(strings.TrimPrefix(scanner.Text(), "\ufeff"), source)
	if err != nil {
		return nil, err
	}

	lex := &Lexicon{}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		row, ok, coerced := index.parseRow(strings.Split(line, "\t"))
		lex.Coerced += coerced
		if !ok {
			lex.Skipped++
			continue
		}
		lex.Rows = append(lex.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return lex, nil
}

type columnIndex map[string]int

func headerIndex(header, source string) (columnIndex, error) {
	index := make(columnIndex)
	for i, name := range strings.Split(header, "\t") {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &entity.MissingColumnsError{Source: source, Columns: missing}
	}
	return index, nil
}

func (c columnIndex) field(fields []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func (c columnIndex) parseRow(fields []string) (entity.LexicalRow, bool, int) {
	coerced := 0
	num := func(name string) float64 {
		v, ok := parseFloat(c.field(fields, name))
		if !ok {
			coerced++
		}
		return v
	}

	row := entity.LexicalRow{
		Ortho:          norm.NFC.String(c.field(fields, ColOrtho)),
		Lemma:          norm.NFC.String(c.field(fields, ColLemma)),
		Category:       entity.ParseCategory(c.field(fields, ColCategory)),
		Gender:         entity.ParseGender(c.field(fields, ColGender)),
		Number:         entity.ParseNumber(c.field(fields, ColNumber)),
		SpokenFreq:     num(ColSpokenLemma),
		WrittenFreq:    num(ColWrittenLemma),
		FormSpoken:     num(ColSpokenForm),
		FormWritten:    num(ColWrittenForm),
		IsLemma:        c.field(fields, ColIsLemma) == "1",
		InflectionCode: c.field(fields, ColInflection),
	}
	homographs, ok := parseInt(c.field(fields, ColHomographs))
	if !ok {
		coerced++
	}
	row.Homographs = homographs

	if row.Ortho == "" || row.Lemma == "" {
		return row, false, coerced
	}
	return row, true, coerced
}

// parseFloat treats an empty cell as a legitimate zero; anything unparsable
// or non-finite is reported so the caller can count it.
func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		f, ok := parseFloat(raw)
		if !ok {
			return 0, false
		}
		return int(f), true
	}
	return v, true
}

// IsStructural reports whether err should abort the pipeline.
func IsStructural(err error) bool {
	return errors.Is(err, entity.ErrMissingColumns) || errors.Is(err, entity.ErrEmptyLexicon)
}

// FrequencyIndex maps lower-cased lemmas and forms to the highest weighted
// lemma frequency seen for them.
func (l *Lexicon) FrequencyIndex(scorer frequency.Scorer) map[string]float64 {
	index := make(map[string]float64, len(l.Rows))
	put := func(key string, score float64) {
		key = entity.NormalizeWordToken(key)
		if key == "" {
			return
		}
		if score > index[key] {
			index[key] = score
		}
	}
	for _, row := range l.Rows {
		score := scorer.Lemma(row)
		put(row.Lemma, score)
		put(row.Ortho, score)
	}
	return index
}
