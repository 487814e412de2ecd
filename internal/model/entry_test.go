package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyText(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{"absent", Property{}, TextDescEmpty},
		{"string", Property{Value: "Builds it", Present: true}, "Builds it"},
		{"empty string", Property{Value: "", Present: true}, ""},
		{"null", Property{Value: nil, Present: true}, TextNotAString},
		{"number", Property{Value: 42, Present: true}, TextNotAString},
		{"list", Property{Value: []any{"a"}, Present: true}, TextNotAString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prop.Text(TextDescEmpty))
		})
	}
}

func TestEntryFallbacks(t *testing.T) {
	e := Entry{Name: "test"}
	assert.Equal(t, TextDescEmpty, e.Description())
	assert.Equal(t, TextSummaryEmpty, e.SummaryText())
	assert.Equal(t, "", e.Location())

	e.File = filepath.Join("some", "dir", "Taskfile.yml")
	assert.Equal(t, "Taskfile.yml", e.Location())
	e.Line = 7
	assert.Equal(t, "Taskfile.yml:7", e.Location())
}

func TestGetLineContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Taskfile.yml")
	content := "version: '3'\ntasks:\n  build:\n    desc: Builds it\n  test: {}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ctx := GetLineContext(path, 3)
	require.Empty(t, ctx.ErrorMsg)
	assert.Equal(t, "  build:", ctx.Target)
	assert.Equal(t, []string{"version: '3'", "tasks:"}, ctx.Before)
	assert.Equal(t, []string{"    desc: Builds it", "  test: {}"}, ctx.After)

	lines := ctx.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, "»    3    build:", lines[2])

	edge := GetLineContext(path, 1)
	assert.Empty(t, edge.Before)
	assert.Len(t, edge.After, 2)

	missing := GetLineContext(path, 99)
	assert.Contains(t, missing.ErrorMsg, "out of range")
	assert.Equal(t, []string{missing.ErrorMsg}, missing.Lines())

	unreadable := GetLineContext(filepath.Join(t.TempDir(), "nope.yml"), 1)
	assert.Contains(t, unreadable.ErrorMsg, "Could not read file")
}
