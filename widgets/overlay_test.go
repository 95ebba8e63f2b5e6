package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func baseGrid(rows int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("#", 24)
	}
	return strings.Join(lines, "\n")
}

func TestRenderPopupKeepsBaseEdges(t *testing.T) {
	out := RenderPopup(baseGrid(11), "Hi", 24, 11)
	lines := strings.Split(out, "\n")
	if len(lines) != 11 {
		t.Fatalf("line count = %d, want 11", len(lines))
	}
	if !strings.Contains(out, "Hi") {
		t.Fatalf("popup content missing from output")
	}
	if !strings.Contains(lines[0], "#") {
		t.Fatalf("top base row lost: %q", lines[0])
	}
	if !strings.Contains(lines[10], "#") {
		t.Fatalf("bottom base row lost: %q", lines[10])
	}
}

func TestRenderStackShowsAllLayers(t *testing.T) {
	out := RenderStack(baseGrid(15), []string{"bottom", "topmost"}, 40, 15)
	if !strings.Contains(out, "topmost") {
		t.Fatalf("top layer missing")
	}
	// the cascade offset keeps the lower card's corner visible
	if got := strings.Count(out, "╭"); got != 2 {
		t.Fatalf("visible card corners = %d, want 2", got)
	}
	for i, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) != 40 {
			t.Fatalf("row %d width = %d, want 40", i, ansi.StringWidth(line))
		}
	}
}

func TestRenderStackEmptyAndDegenerate(t *testing.T) {
	if got := RenderStack("base", nil, 0, 5); got != "" {
		t.Fatalf("zero width output = %q, want empty", got)
	}
	out := RenderStack("only base", nil, 12, 3)
	if !strings.Contains(out, "only base") {
		t.Fatalf("base dropped when no layers present")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
}

func TestRenderStackOversizedCardClipped(t *testing.T) {
	wide := strings.Repeat("x", 60)
	out := RenderStack(baseGrid(7), []string{wide}, 20, 7)
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("row %d width = %d, want <= 20", i, w)
		}
	}
}
