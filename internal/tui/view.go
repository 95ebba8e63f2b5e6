package tui

import (
	"fmt"
	"strings"

	"github.com/jask/modalkit/widgets"
)

func (a *App) View() string {
	if a.quit {
		return "Goodbye\n"
	}
	base := a.renderBase()
	nodes, _ := a.modals.Present()
	if len(nodes) == 0 {
		return base
	}
	if a.cfg.UI.DimBase {
		base = dimStyle.Render(base)
	}
	cardW := maxInt(20, a.width-16)
	cardH := maxInt(6, a.height-10)
	layers := make([]string, 0, len(nodes))
	for _, n := range nodes {
		layers = append(layers, n.View(cardW, cardH))
	}
	if !a.cfg.UI.Cascade {
		layers = layers[len(layers)-1:]
	}
	return widgets.RenderStack(base, layers, a.width, a.height)
}

func (a *App) renderBase() string {
	lines := []string{headerStyle.Render("modaldemo"), ""}
	if len(a.list) == 0 {
		lines = append(lines, "  No tasks. Press a to add one.")
	}
	for i, t := range a.list {
		prefix := "  "
		if i == a.cursor {
			prefix = "> "
		}
		mark := "[ ]"
		title := t.Title
		if t.Done {
			mark = "[x]"
			title = doneStyle.Render(title)
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, title)
		if t.Category != "" {
			line += statusStyle.Render("  (" + t.Category + ")")
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", statusStyle.Render(a.status),
		statusStyle.Render("a add  r rename  c category  d delete  x toggle  q quit"))

	out := strings.Join(lines, "\n")
	rows := strings.Split(out, "\n")
	if len(rows) > a.height {
		rows = rows[:a.height]
	}
	for len(rows) < a.height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}
