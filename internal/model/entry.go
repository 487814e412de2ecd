package model

import (
	"fmt"
	"path/filepath"
)

// Fallback texts shown in the description and summary panels.
const (
	TextNotAString     = "Not a string."
	TextDescEmpty      = "Description is empty."
	TextSummaryEmpty   = "Summary is empty."
	TextItemNotFound   = "Item not found."
	SupportedVersion   = "3"
	DefaultTaskProgram = "task"
)

// Property is an optional free-form value read from a task block.
type Property struct {
	Value   any  // Raw decoded YAML value (string, number, list, map, nil)
	Present bool // Whether the key existed in the task block
}

// Text resolves the property to display text.
// empty is returned when the key was absent.
func (p Property) Text(empty string) string {
	if !p.Present {
		return empty
	}
	s, ok := p.Value.(string)
	if !ok {
		return TextNotAString
	}
	return s
}

// Entry represents a single task definition from a Taskfile.
type Entry struct {
	Name    string   // Task name (mapping key)
	Desc    Property // The `desc` key
	Summary Property // The `summary` key
	File    string   // Taskfile the task was read from
	Line    int      // Line of the task key in File
}

// Description returns the description text with fallbacks applied.
func (e Entry) Description() string {
	return e.Desc.Text(TextDescEmpty)
}

// SummaryText returns the summary text with fallbacks applied.
func (e Entry) SummaryText() string {
	return e.Summary.Text(TextSummaryEmpty)
}

// Location formats the task's source position, e.g. "Taskfile.yml:12".
func (e Entry) Location() string {
	if e.File == "" {
		return ""
	}
	if e.Line <= 0 {
		return filepath.Base(e.File)
	}
	return fmt.Sprintf("%s:%d", filepath.Base(e.File), e.Line)
}

// Taskfile is the loaded configuration.
type Taskfile struct {
	Path    string
	Version string
	Entries []Entry // Sorted ascending by name
}

// Names returns the task names in display order.
func (t Taskfile) Names() []string {
	names := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		names[i] = e.Name
	}
	return names
}
