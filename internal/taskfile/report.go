package taskfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"taskmenu/internal/model"
)

// now is swapped in tests.
var now = time.Now

// GenerateReport renders a plain-text listing of the Taskfile. Verbose adds the
// summary and the source lines around each task key.
func GenerateReport(tf model.Taskfile, verbose bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Taskfile: %s", tf.Path))
	if info, err := os.Stat(tf.Path); err == nil {
		sb.WriteString(fmt.Sprintf(" (%s, modified %s)",
			humanize.Bytes(uint64(info.Size())),
			humanize.RelTime(info.ModTime(), now(), "ago", "from now")))
	}
	sb.WriteString(fmt.Sprintf("\nVersion:  %s", tf.Version))
	sb.WriteString(fmt.Sprintf("\nTasks:    %d\n", len(tf.Entries)))

	width := 0
	for _, e := range tf.Entries {
		width = max(width, len(e.Name))
	}

	for _, e := range tf.Entries {
		marker := " "
		if !e.Desc.Present {
			marker = model.IconNoDesc
		}
		sb.WriteString(fmt.Sprintf("\n%s %-*s  %s", marker, width, e.Name, firstLine(e.Description())))

		if !verbose {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n    %s %s", model.IconLocation, e.Location()))
		for _, l := range strings.Split(strings.TrimRight(e.SummaryText(), "\n"), "\n") {
			sb.WriteString("\n    | " + l)
		}
		if e.Line > 0 {
			for _, l := range model.GetLineContext(e.File, e.Line).Lines() {
				sb.WriteString("\n    " + l)
			}
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// jsonEntry is the machine-readable form of an entry.
type jsonEntry struct {
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Summary  string `json:"summary"`
	Location string `json:"location,omitempty"`
}

// WriteJSON writes the entries as an indented JSON document.
func WriteJSON(w io.Writer, tf model.Taskfile) error {
	out := struct {
		Path    string      `json:"path"`
		Version string      `json:"version"`
		Tasks   []jsonEntry `json:"tasks"`
	}{
		Path:    tf.Path,
		Version: tf.Version,
		Tasks:   make([]jsonEntry, 0, len(tf.Entries)),
	}
	for _, e := range tf.Entries {
		out.Tasks = append(out.Tasks, jsonEntry{
			Name:     e.Name,
			Desc:     e.Description(),
			Summary:  e.SummaryText(),
			Location: e.Location(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
