package modal

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotMounted rejects futures created while no manager is mounted.
var ErrNotMounted = errors.New("modal: manager not mounted")

// entry is the registry record for one live modal.
type entry struct {
	comp   Component
	props  Props
	future *Future
	node   *Node // nil until first Present
}

// Manager owns the modal registry and the ordered stack of live identifiers.
// All mutation must happen on the runtime's update goroutine; the manager
// takes no locks. A host model holds a *Manager, calls Mount in Init,
// forwards messages through Update, and renders Present's nodes in View.
type Manager struct {
	entries map[string]*entry
	stack   []string
	mounted bool
	warnf   func(format string, args ...any)
}

func NewManager() *Manager {
	return &Manager{
		entries: make(map[string]*entry),
		warnf:   log.Printf,
	}
}

// Mount attaches the manager to a host. At most one host may be mounted;
// a second Mount is ignored with a warning, the first mount wins.
func (m *Manager) Mount() {
	if m.mounted {
		m.warnf("warn: modal manager mounted twice, keeping first mount")
		return
	}
	m.mounted = true
}

// Unmount releases the mount slot. Idempotent.
func (m *Manager) Unmount() {
	m.mounted = false
}

func (m *Manager) Mounted() bool { return m.mounted }

// Active reports whether any modal is on the stack.
func (m *Manager) Active() bool { return len(m.stack) > 0 }

func (m *Manager) Len() int { return len(m.stack) }

// IDs returns the live identifiers bottom to top.
func (m *Manager) IDs() []string {
	ids := make([]string, len(m.stack))
	copy(ids, m.stack)
	return ids
}

// Create registers comp with props, pushes it onto the stack and returns the
// future that resolves with the modal's dismissal result. With no mounted
// manager the future is already rejected with ErrNotMounted and nothing is
// registered. The returned command announces the new modal to the host.
func (m *Manager) Create(comp Component, props Props) (*Future, tea.Cmd) {
	if !m.mounted {
		m.warnf("warn: modal created with no mounted manager")
		return rejected(ErrNotMounted), nil
	}
	if comp == nil {
		m.warnf("warn: modal created with nil component")
		return rejected(errors.New("modal: nil component")), nil
	}
	id := newID()
	for m.entries[id] != nil {
		id = newID()
	}
	m.entries[id] = &entry{comp: comp, props: props, future: newFuture()}
	m.stack = append(m.stack, id)
	return m.entries[id].future, func() tea.Msg {
		return CreatedMsg{ID: id, Active: true}
	}
}

// Dismiss removes id from the stack and registry and fulfills its future
// with result. Dismissing an unknown id returns nil. The returned command
// emits DismissedMsg followed by ActiveChangedMsg.
func (m *Manager) Dismiss(id string, result any) tea.Cmd {
	for i, sid := range m.stack {
		if sid == id {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			break
		}
	}
	e, ok := m.entries[id]
	if !ok {
		return nil
	}
	delete(m.entries, id)
	e.future.fulfill(result)
	active := len(m.stack) > 0
	return tea.Batch(
		func() tea.Msg { return DismissedMsg{ID: id, Result: result, Active: active} },
		func() tea.Msg { return ActiveChangedMsg{Active: active} },
	)
}

// Present returns one node per stacked modal, bottom to top. Nodes are bound
// on first sight: the component's Init runs with its stored props and a
// dismissal hook tied to its identifier, and the node is cached on the entry
// so later calls return the same instances. The command batches the Init
// commands of newly bound nodes and is nil when nothing new was bound, which
// makes Present safe to call from View.
func (m *Manager) Present() ([]*Node, tea.Cmd) {
	nodes := make([]*Node, 0, len(m.stack))
	var cmds []tea.Cmd
	for _, id := range m.stack {
		e := m.entries[id]
		if e == nil {
			continue
		}
		if e.node == nil {
			e.node = &Node{id: id, comp: e.comp}
			if cmd := e.comp.Init(e.props, m.closeFor(id)); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		nodes = append(nodes, e.node)
	}
	if len(cmds) == 0 {
		return nodes, nil
	}
	return nodes, tea.Batch(cmds...)
}

// Update routes runtime messages. Dismiss signals go to Dismiss, key input
// goes to the top modal only, everything else fans out to every bound node
// so ticks and data loads reach background modals too.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DismissMsg:
		return m.Dismiss(msg.ID, msg.Result)
	case tea.KeyMsg:
		if top := m.top(); top != nil {
			return top.update(msg)
		}
		return nil
	default:
		var cmds []tea.Cmd
		for _, id := range m.stack {
			if e := m.entries[id]; e != nil && e.node != nil {
				if cmd := e.node.update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}
		if len(cmds) == 0 {
			return nil
		}
		return tea.Batch(cmds...)
	}
}

func (m *Manager) top() *Node {
	if len(m.stack) == 0 {
		return nil
	}
	e := m.entries[m.stack[len(m.stack)-1]]
	if e == nil {
		return nil
	}
	return e.node
}

func (m *Manager) closeFor(id string) CloseFunc {
	return func(result any) tea.Cmd {
		return Dismiss(id, result)
	}
}
