package modal

import tea "github.com/charmbracelet/bubbletea"

// CreatedMsg is emitted after a modal is created and pushed onto the stack.
// Active reports whether any modal is on the stack at emission.
type CreatedMsg struct {
	ID     string
	Active bool
}

// DismissedMsg is emitted after a modal is removed and its future fulfilled.
type DismissedMsg struct {
	ID     string
	Result any
	Active bool
}

// ActiveChangedMsg is emitted alongside DismissedMsg so hosts that only care
// about the aggregate modal-active state can watch a single message type.
type ActiveChangedMsg struct {
	Active bool
}

// DismissMsg asks the manager to close the identified modal and deliver
// result to its creator. Components emit it through their CloseFunc.
type DismissMsg struct {
	ID     string
	Result any
}

// Dismiss returns a command producing the dismiss signal for id.
func Dismiss(id string, result any) tea.Cmd {
	return func() tea.Msg { return DismissMsg{ID: id, Result: result} }
}
