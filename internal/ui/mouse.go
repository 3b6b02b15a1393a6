package ui

import (
	"github.com/atomicstack/dockbar/internal/logging/events"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.pointerX = mouse.X
	m.pointerY = mouse.Y

	switch mouse.Action {
	case tea.MouseActionMotion:
		if m.dock.Dragged() >= 0 {
			m.trackDrag(mouse.X)
			return nil
		}
		if mouse.Button == tea.MouseButtonNone {
			m.trackHover(mouse.X, mouse.Y)
		}
	case tea.MouseActionPress:
		switch mouse.Button {
		case tea.MouseButtonLeft:
			m.beginDrag(mouse.X, mouse.Y)
		}
	case tea.MouseActionRelease:
		if m.dock.Dragged() >= 0 {
			m.finishDrag()
			return nil
		}
		if mouse.Button == tea.MouseButtonRight {
			return m.copyLabel(mouse.X, mouse.Y)
		}
	}
	return nil
}

func (m *Model) trackHover(x, y int) {
	index := m.layout.hitTest(x, y)
	if index == m.dock.Hovered() {
		return
	}
	if index < 0 {
		if m.dock.PointerExit() {
			events.Dock.HoverEnd()
		}
		return
	}
	if m.dock.PointerEnter(index) {
		events.Dock.Hover(index, m.dock.Items()[index].Label)
	}
}

func (m *Model) beginDrag(x, y int) {
	index := m.layout.hitTest(x, y)
	if index < 0 {
		return
	}
	if !m.dock.DragStart(index) {
		return
	}
	m.dragSlot = index
	m.springX = float64(x)
	m.springV = 0
	events.Dock.DragStart(index, m.dock.Items()[index].Label)
}

func (m *Model) trackDrag(x int) {
	if slot := m.layout.slotAt(x); slot >= 0 {
		m.dragSlot = slot
	}
}

func (m *Model) finishDrag() {
	src := m.dock.Dragged()
	dst := m.dragSlot
	if dst >= 0 && dst != src {
		accepted := m.dock.Drop(src, dst)
		events.Dock.Drop(src, dst, accepted)
	}
	m.dock.DragEnd()
	m.dragSlot = -1
	events.Dock.DragEnd(src)
	m.refreshLayout()
}

func (m *Model) copyLabel(x, y int) tea.Cmd {
	index := m.layout.hitTest(x, y)
	if index < 0 {
		return nil
	}
	label := m.dock.Items()[index].Label
	return func() tea.Msg {
		err := clipboard.WriteAll(label)
		if err == nil {
			events.UI.Clipboard(label)
		}
		return clipboardResultMsg{label: label, err: err}
	}
}
