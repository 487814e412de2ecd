package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"taskmenu/internal/menu"
	"taskmenu/internal/model"
)

// Smallest terminal the layout is computed for; smaller screens get clipped.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Row is one visible line of the task list.
type Row struct {
	Index    int
	Text     string
	Selected bool
}

// Frame is a snapshot laid out for a terminal of a given size. Widths and
// heights are panel interiors (borders excluded). Painters only draw it.
type Frame struct {
	Width, Height int

	ListWidth  int
	ListHeight int
	Rows       []Row

	DetailWidth   int
	DescHeight    int
	SummaryHeight int
	Description   []string
	Summary       []string
	Location      string

	Keys []key.Binding
}

// Project lays out s for a width x height terminal. The panels take all rows
// but the last, which is left to the key help.
func Project(s menu.Snapshot, width, height int) Frame {
	width = max(width, MinWidth)
	height = max(height, MinHeight)

	// Two bordered boxes side by side: 4 columns of border.
	netWidth := width - 4
	listWidth := netWidth / 2
	detailWidth := netWidth - listWidth

	boxHeight := height - 1
	descBox := boxHeight / 2
	summaryBox := boxHeight - descBox

	f := Frame{
		Width:         width,
		Height:        height,
		ListWidth:     listWidth,
		ListHeight:    boxHeight - 2,
		DetailWidth:   detailWidth,
		DescHeight:    descBox - 2,
		SummaryHeight: summaryBox - 2,
		Location:      s.Location,
		Keys:          DefaultKeyMap().ShortHelp(),
	}

	f.Rows = projectRows(s, f.ListWidth, f.ListHeight-1)

	// One line of each detail box goes to its title.
	f.Description = clip(wrap(s.Description, detailWidth), f.DescHeight-1, detailWidth)
	f.Summary = wrap(s.Summary, detailWidth)

	return f
}

// projectRows windows the entries so the cursor stays visible, centring it
// once the list no longer fits.
func projectRows(s menu.Snapshot, width, visible int) []Row {
	visible = max(visible, 1)
	startIdx := 0
	endIdx := len(s.Entries)

	if len(s.Entries) > visible {
		if s.Cursor >= visible/2 {
			startIdx = s.Cursor - visible/2
		}
		if startIdx+visible > len(s.Entries) {
			startIdx = len(s.Entries) - visible
		}
		endIdx = startIdx + visible
	}

	rows := make([]Row, 0, endIdx-startIdx)
	for i := startIdx; i < endIdx; i++ {
		e := s.Entries[i]
		selected := s.Selected(i)

		prefix := "  "
		if selected {
			prefix = model.IconCursor + " "
		}
		text := prefix + e.Name
		if e.Summary.Present {
			text += " " + model.IconSummary
		}

		rows = append(rows, Row{
			Index:    i,
			Text:     ansi.Truncate(text, width, "…"),
			Selected: selected,
		})
	}
	return rows
}

func wrap(text string, width int) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

// clip keeps at most n lines, marking the cut with an ellipsis.
func clip(lines []string, n, width int) []string {
	n = max(n, 1)
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	out[n-1] = ansi.Truncate(out[n-1], width-1, "") + "…"
	return out
}
