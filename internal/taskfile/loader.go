package taskfile

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"taskmenu/internal/model"
)

// document is the part of a Taskfile the menu cares about. Tasks stays a raw
// node so the version can be checked before task content is interpreted.
// Version is a pointer so a missing key can be told apart from an empty one.
type document struct {
	Version *string   `yaml:"version"`
	Tasks   yaml.Node `yaml:"tasks"`
}

// Load reads and parses the Taskfile at path.
func Load(path string) (model.Taskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Taskfile{}, fmt.Errorf("%w %s: %v", ErrUnreadableFile, path, err)
	}
	return Parse(path, data)
}

// Parse decodes Taskfile content. path is only recorded on the entries.
func Parse(path string, data []byte) (model.Taskfile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Taskfile{}, fmt.Errorf("%w %s: empty document", ErrParse, path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Taskfile{}, fmt.Errorf("%w %s: %v", ErrParse, path, err)
	}
	if doc.Version == nil {
		return model.Taskfile{}, fmt.Errorf("%w %s: missing version", ErrParse, path)
	}
	if *doc.Version != model.SupportedVersion {
		return model.Taskfile{}, fmt.Errorf("%w %q. Supported version is %s", ErrUnsupportedVersion, *doc.Version, model.SupportedVersion)
	}

	entries, err := parseTasks(path, &doc.Tasks)
	if err != nil {
		return model.Taskfile{}, err
	}
	if len(entries) == 0 {
		return model.Taskfile{}, fmt.Errorf("%w in %s", ErrNoTasksFound, path)
	}

	return model.Taskfile{
		Path:    path,
		Version: *doc.Version,
		Entries: entries,
	}, nil
}

// parseTasks walks the tasks mapping. Duplicate names keep the last block.
func parseTasks(path string, node *yaml.Node) ([]model.Entry, error) {
	switch {
	case node.Kind == 0:
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return nil, nil
	case node.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("%w %s: line %d: tasks must be a mapping", ErrParse, path, node.Line)
	}

	byName := make(map[string]model.Entry, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w %s: line %d: task name must be a string", ErrParse, path, key.Line)
		}

		var props map[string]any
		if err := val.Decode(&props); err != nil {
			return nil, fmt.Errorf("%w %s: task %q (line %d): %v", ErrParse, path, key.Value, key.Line, err)
		}

		byName[key.Value] = model.Entry{
			Name:    key.Value,
			Desc:    property(props, "desc"),
			Summary: property(props, "summary"),
			File:    path,
			Line:    key.Line,
		}
	}

	entries := make([]model.Entry, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		entries = append(entries, byName[name])
	}
	return entries, nil
}

func property(props map[string]any, key string) model.Property {
	v, ok := props[key]
	return model.Property{Value: v, Present: ok}
}
