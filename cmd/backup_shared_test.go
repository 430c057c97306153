package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocdeck/internal/entity"
)

func TestNormalizeTables(t *testing.T) {
	assert.Nil(t, normalizeTables(nil))
	assert.Nil(t, normalizeTables([]string{" ", ""}))
	assert.Equal(t, []string{"vocab_cards", "review_items"}, normalizeTables([]string{" Vocab_Cards ", "", "REVIEW_ITEMS"}))
}

func TestProgressStep(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1000},
		{10, 1},
		{200, 10},
		{1_000_000, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, progressStep(tt.total), "total=%d", tt.total)
	}
}

func TestCLIProgress(t *testing.T) {
	var out bytes.Buffer
	p := newCLIProgress(&out)
	p.StartTable("vocab_cards", 2)
	p.Increment("vocab_cards", 1)
	p.Increment("vocab_cards", 1)
	p.FinishTable("vocab_cards")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "vocab_cards")
	assert.Contains(t, lines[2], "2/2")
	assert.Contains(t, lines[3], "2")
}

func TestSnapshotWriterReaderGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deck.jsonl.gz")

	w, closeW, err := openSnapshotWriter(io.Discard, path, true)
	require.NoError(t, err)
	_, err = io.WriteString(w, `{"type":"meta"}`+"\n")
	require.NoError(t, err)
	require.NoError(t, closeW())

	r, closeR, err := openSnapshotReader(strings.NewReader(""), path, true)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, closeR())
	assert.Equal(t, `{"type":"meta"}`+"\n", string(data))

	_, _, err = openSnapshotReader(nil, filepath.Join(t.TempDir(), "missing.jsonl"), false)
	assert.Error(t, err)
}

func TestSnapshotWriterStdout(t *testing.T) {
	var stdout bytes.Buffer
	w, closeW, err := openSnapshotWriter(&stdout, "-", false)
	require.NoError(t, err)
	_, err = io.WriteString(w, "x")
	require.NoError(t, err)
	require.NoError(t, closeW())
	assert.Equal(t, "x", stdout.String())
}

func TestWriteCards(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCards(&out, []entity.VocabEntry{
		{French: "la maison", WordType: "f", Level: entity.LevelA1A2, Frequency: 349.5, Source: entity.SourceLexicon},
	}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "FRENCH"))
	assert.Regexp(t, `^la maison\s+f\s+a1_a2\s+349\.50\s+lexique`, lines[1])
}
