package modal

import tea "github.com/charmbracelet/bubbletea"

// Props carries optional named instantiation values for a component.
type Props map[string]any

// String returns the string value for key, or fallback when absent.
func (p Props) String(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Bool returns the bool value for key, or fallback when absent.
func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

// CloseFunc signals completion of a modal with a result value. A nil result
// is the absent-value dismissal. The returned command must be handed back to
// the runtime so the manager observes the dismissal.
type CloseFunc func(result any) tea.Cmd

// Component is a renderable unit that can be presented as a modal. Init is
// called once, when the manager first presents the component, with the props
// stored at creation and a dismissal hook bound to this modal's identifier.
type Component interface {
	Init(props Props, close CloseFunc) tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View(width, height int) string
}

// Node is a component bound to its stack identifier. Nodes are built lazily
// on first present and cached until dismissal, so the same entry always
// yields the same node instance.
type Node struct {
	id   string
	comp Component
}

func (n *Node) ID() string { return n.id }

func (n *Node) View(width, height int) string {
	return n.comp.View(width, height)
}

func (n *Node) update(msg tea.Msg) tea.Cmd {
	comp, cmd := n.comp.Update(msg)
	if comp != nil {
		n.comp = comp
	}
	return cmd
}
