package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one node of an indented tree display.
type TreeItem struct {
	Code   string
	Title  string
	Level  int
	IsLast bool
	Done   bool
	Detail string // right-aligned badge, "" for none
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders tree items with box-drawing connectors. Completed items
// get a green check and a dimmed title; detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type line struct {
		content string
		badge   string
	}

	lines := make([]line, len(items))
	maxWidth := 0
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		code := ""
		if item.Code != "" {
			code = StyleDim.Render(item.Code + " ")
		}
		title := item.Title
		if item.Done {
			title = StyleGreen.Render("✔ ") + Dim(item.Title)
		}

		lines[idx].content = prefix + code + title
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		if w := lipgloss.Width(lines[idx].content); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		b.WriteString(li.content)
		if li.badge != "" {
			pad := maxWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad) + "  " + li.badge)
		}
		b.WriteString("\n")
	}
	return b.String()
}
