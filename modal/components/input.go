package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/modalkit/modal"
)

// Input is a single-line text prompt. Enter resolves to the entered string,
// esc resolves to nil (absent value). Props: "prompt", "placeholder",
// "value".
type Input struct {
	prompt string
	field  textinput.Model
	close  modal.CloseFunc
}

func NewInput(prompt string) *Input {
	field := textinput.New()
	field.CharLimit = 120
	field.Width = 40
	return &Input{prompt: prompt, field: field}
}

func (in *Input) Init(props modal.Props, close modal.CloseFunc) tea.Cmd {
	in.prompt = props.String("prompt", in.prompt)
	in.field.Placeholder = props.String("placeholder", in.field.Placeholder)
	if v := props.String("value", ""); v != "" {
		in.field.SetValue(v)
		in.field.CursorEnd()
	}
	in.close = close
	in.field.Focus()
	return textinput.Blink
}

func (in *Input) Update(msg tea.Msg) (modal.Component, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			return in, in.close(in.field.Value())
		case tea.KeyEsc:
			return in, in.close(nil)
		}
	}
	var cmd tea.Cmd
	in.field, cmd = in.field.Update(msg)
	return in, cmd
}

func (in *Input) View(width, height int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(in.prompt),
		"",
		in.field.View(),
		helpStyle.Render("enter accept  esc cancel"),
	)
}
