package taskfile

import (
	"fmt"

	"github.com/gobwas/glob"

	"taskmenu/internal/model"
)

// Filter keeps the entries whose name matches pattern. ':' separates task
// namespaces, so `docker:*` does not reach into `docker:build:image`.
// An empty pattern keeps everything.
func Filter(entries []model.Entry, pattern string) ([]model.Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	g, err := glob.Compile(pattern, ':')
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}

	var kept []model.Entry
	for _, e := range entries {
		if g.Match(e.Name) {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w matching %q", ErrNoTasksFound, pattern)
	}
	return kept, nil
}
