package taskfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmenu/internal/model"
)

func entries(names ...string) []model.Entry {
	out := make([]model.Entry, len(names))
	for i, n := range names {
		out[i] = model.Entry{Name: n}
	}
	return out
}

func namesOf(es []model.Entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	all := entries("build", "docker:build", "docker:build:image", "docker:push", "test")

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"build", "docker:build", "docker:build:image", "docker:push", "test"}},
		{"docker:*", []string{"docker:build", "docker:push"}},
		{"docker:**", []string{"docker:build", "docker:build:image", "docker:push"}},
		{"*build*", []string{"build"}},
		{"{build,test}", []string{"build", "test"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Filter(all, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, namesOf(got))
		})
	}
}

func TestFilterNoMatch(t *testing.T) {
	_, err := Filter(entries("build"), "deploy*")
	assert.ErrorIs(t, err, ErrNoTasksFound)
}

func TestFilterInvalidPattern(t *testing.T) {
	_, err := Filter(entries("build"), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}
