package ui

import (
	"github.com/atomicstack/dockbar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.jumpActive {
		return m.handleJumpKey(key)
	}
	switch key.String() {
	case "q", "ctrl+c":
		m.dock.Close()
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return tea.Quit
	case "/":
		m.jumpActive = true
		m.jumpInput.SetValue("")
		return m.jumpInput.Focus()
	case "left":
		m.nudgeHover(-1)
	case "right":
		m.nudgeHover(1)
	case "esc":
		if m.dock.PointerExit() {
			events.Dock.HoverEnd()
		}
	}
	return nil
}

func (m *Model) handleJumpKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.closeJump()
		return nil
	case "enter":
		m.closeJump()
		return nil
	case "ctrl+c":
		m.dock.Close()
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return tea.Quit
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(key)
	query := m.jumpInput.Value()
	if index := bestMatchIndex(labels(m.dock.Items()), query); index >= 0 {
		if m.dock.PointerEnter(index) {
			events.UI.Jump(query, index)
		}
	}
	return cmd
}

func (m *Model) closeJump() {
	m.jumpActive = false
	m.jumpInput.Blur()
	m.jumpInput.SetValue("")
}

// nudgeHover moves the hover highlight by keyboard, wrapping at the ends.
func (m *Model) nudgeHover(delta int) {
	n := m.dock.Len()
	if n == 0 {
		return
	}
	current := m.dock.Hovered()
	var next int
	switch {
	case current < 0 && delta > 0:
		next = 0
	case current < 0:
		next = n - 1
	default:
		next = ((current+delta)%n + n) % n
	}
	if m.dock.PointerEnter(next) {
		events.Dock.Hover(next, m.dock.Item(next).Label)
	}
}
