package components

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/modalkit/modal"
)

// Item is one pickable entry.
type Item struct {
	ID    string
	Label string
	Meta  string
}

// Picker is a filterable list. Typing narrows the items; matches are ranked
// by edit distance of the query against the label so near-misses surface
// first. Enter resolves to the selected Item, esc resolves to nil.
type Picker struct {
	title    string
	items    []Item
	filtered []Item
	query    string
	cursor   int
	close    modal.CloseFunc
}

func NewPicker(title string, items []Item) *Picker {
	p := &Picker{title: strings.TrimSpace(title), items: items}
	p.refilter()
	return p
}

func (p *Picker) Init(props modal.Props, close modal.CloseFunc) tea.Cmd {
	p.title = props.String("title", p.title)
	p.close = close
	return nil
}

func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }
func (p *Picker) Items() []Item { return p.filtered }

func (p *Picker) Update(msg tea.Msg) (modal.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch keyMsg.Type {
	case tea.KeyEsc:
		return p, p.close(nil)
	case tea.KeyEnter:
		if p.cursor < len(p.filtered) {
			return p, p.close(p.filtered[p.cursor])
		}
		return p, p.close(nil)
	case tea.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case tea.KeyDown:
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
	case tea.KeyBackspace:
		if p.query != "" {
			p.query = p.query[:len(p.query)-1]
			p.refilter()
		}
	case tea.KeyRunes:
		p.query += string(keyMsg.Runes)
		p.refilter()
	}
	return p, nil
}

// refilter keeps items whose label or meta contains the query and orders
// them by edit distance; with no substring hit at all, every item stays in,
// distance-ranked, so typos still find their target.
func (p *Picker) refilter() {
	p.cursor = 0
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.filtered = append([]Item(nil), p.items...)
		return
	}
	matched := make([]Item, 0, len(p.items))
	for _, it := range p.items {
		if strings.Contains(strings.ToLower(it.Label+" "+it.Meta), q) {
			matched = append(matched, it)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, p.items...)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return distance(q, matched[i].Label) < distance(q, matched[j].Label)
	})
	p.filtered = matched
}

func distance(query, label string) int {
	return levenshtein.ComputeDistance(query, strings.ToLower(label))
}

func (p *Picker) View(width, height int) string {
	lines := []string{titleStyle.Render(p.title)}
	filter := p.query
	if filter == "" {
		filter = "(type to filter)"
	}
	lines = append(lines, "Filter: "+filter, "")
	if len(p.filtered) == 0 {
		lines = append(lines, "  No items")
	}
	for idx, it := range p.filtered {
		prefix := "  "
		if idx == p.cursor {
			prefix = "> "
		}
		label := it.Label
		if it.Meta != "" {
			label += " - " + it.Meta
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", helpStyle.Render("enter select  esc cancel"))
	return strings.Join(lines, "\n")
}
