package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalkit/modal"
)

var (
	titleStyle          = lipgloss.NewStyle().Bold(true)
	buttonStyle         = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("250"))
	buttonSelectedStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true)
	helpStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type confirmKeys struct {
	Toggle key.Binding
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func newConfirmKeys() confirmKeys {
	return confirmKeys{
		Toggle: key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "select")),
		Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Confirm is a Yes/No dialog resolving to a bool. Esc resolves to false.
// Props "title" and "message" override the constructor values.
type Confirm struct {
	title   string
	message string
	yes     bool
	keys    confirmKeys
	close   modal.CloseFunc
}

func NewConfirm(title, message string) *Confirm {
	return &Confirm{title: title, message: message, yes: true, keys: newConfirmKeys()}
}

func (c *Confirm) Init(props modal.Props, close modal.CloseFunc) tea.Cmd {
	c.title = props.String("title", c.title)
	c.message = props.String("message", c.message)
	c.yes = props.Bool("default", c.yes)
	c.close = close
	return nil
}

func (c *Confirm) Update(msg tea.Msg) (modal.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch {
	case key.Matches(keyMsg, c.keys.Toggle):
		c.yes = !c.yes
	case key.Matches(keyMsg, c.keys.Yes):
		return c, c.close(true)
	case key.Matches(keyMsg, c.keys.No):
		return c, c.close(false)
	case key.Matches(keyMsg, c.keys.Accept):
		return c, c.close(c.yes)
	case key.Matches(keyMsg, c.keys.Cancel):
		return c, c.close(false)
	}
	return c, nil
}

func (c *Confirm) View(width, height int) string {
	yes, no := buttonStyle.Render("Yes"), buttonSelectedStyle.Render("No")
	if c.yes {
		yes, no = buttonSelectedStyle.Render("Yes"), buttonStyle.Render("No")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(c.title),
		"",
		c.message,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no),
		helpStyle.Render("←/→ select  enter confirm  esc cancel"),
	)
}
