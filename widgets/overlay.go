package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// CascadeStep is the column/row shift applied per stacked layer so lower
// modals stay visible behind the top one.
const CascadeStep = 2

// RenderStack composites the layers over base, bottom to top. Each layer is
// wrapped in a bordered card and centered, then shifted by its depth so the
// stack reads as a cascade. The result always spans width x height cells.
func RenderStack(base string, layers []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := fitCanvas(base, width, height)
	n := len(layers)
	for i, layer := range layers {
		card := cardStyle.Render(layer)
		lines := toLines(card)
		cw := maxWidth(lines)
		ch := len(lines)
		// center, then fan out around the middle of the stack
		x := (width-cw)/2 + (i-(n-1)/2)*CascadeStep
		y := (height-ch)/2 + (i-(n-1)/2)*CascadeStep/2
		out = composite(out, card, clamp(x, 0, width-1), clamp(y, 0, height-1), width, height)
	}
	return out
}

// RenderPopup composites a single centered card over base.
func RenderPopup(base, popup string, width, height int) string {
	return RenderStack(base, []string{popup}, width, height)
}

// composite draws overlay onto base at cell position (x, y), preserving the
// base content left and right of each overlay row. ANSI sequences are
// width-accounted, not counted.
func composite(base, overlay string, x, y, width, height int) string {
	baseLines := toLines(fitCanvas(base, width, height))
	overlayLines := toLines(overlay)
	overlayWidth := maxWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := baseLines[row]
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		seg := padANSI(line, overlayWidth)
		if x+overlayWidth > width {
			seg = ansi.Truncate(seg, width-x, "")
		}
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(seg), "")
		baseLines[row] = padANSI(left+seg+right, width)
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := toLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func toLines(s string) []string {
	return strings.Split(s, "\n")
}

func maxWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
