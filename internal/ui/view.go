package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/dockbar/internal/dock"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	frames := m.dock.Frame()
	l := m.layout
	if len(l.boxes) != len(frames) {
		l = computeLayout(frames, m.width, m.height)
	}

	rows := make([]string, m.height)

	m.paintDock(rows, l, frames)
	if m.dock.Dragged() >= 0 {
		m.paintFeedback(rows, l, frames)
	}
	m.paintBottomBar(rows)

	for i, row := range rows {
		rows[i] = padRow(row, m.width)
	}
	return strings.Join(rows, "\n")
}

// paintDock renders the item boxes onto the row buffer.
func (m *Model) paintDock(rows []string, l layout, frames []dock.ItemFrame) {
	if l.originY+boxRows > len(rows) {
		return
	}
	segments := make([][]string, len(frames))
	for i, f := range frames {
		segments[i] = strings.Split(m.renderItem(f, l.boxes[i].width-2), "\n")
	}
	for r := 0; r < boxRows; r++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", l.originX))
		for i := range frames {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", marginCols))
			}
			if r < len(segments[i]) {
				b.WriteString(segments[i][r])
			}
		}
		rows[l.originY+r] = b.String()
	}
}

// renderItem draws one item box at the given inner width.
func (m *Model) renderItem(f dock.ItemFrame, cols int) string {
	if cols < 1 {
		cols = 1
	}
	style := styles.Item
	switch {
	case f.Dragged:
		style = styles.Placeholder
	case m.isHighlighted(f):
		style = styles.ItemHover
	case f.Scale >= dock.GlowThreshold:
		style = styles.ItemGlow
	}
	label := truncate.StringWithTail(f.Item.Label, uint(cols), "…")
	return style.Width(cols).Render(f.Item.Icon + "\n" + label)
}

func (m *Model) isHighlighted(f dock.ItemFrame) bool {
	if m.dock.Dragged() >= 0 {
		return f.Index == m.dragSlot
	}
	return f.Index == m.dock.Hovered()
}

// paintFeedback overlays the floating drag-feedback box above the dock,
// horizontally tracking the spring-smoothed pointer position.
func (m *Model) paintFeedback(rows []string, l layout, frames []dock.ItemFrame) {
	src := m.dock.Dragged()
	if src < 0 || src >= len(frames) {
		return
	}
	f := frames[src]

	// The floating copy renders at the drag icon size, scaled by the item's
	// live bounce value.
	cols := int(math.Round(baseContentCols * f.Scale * dock.DragIconSize / dock.IconSize))
	if min := contentCols(f.Item.Icon, 1); cols < min {
		cols = min
	}
	boxW := cols + 2
	if boxW > m.width {
		return
	}

	x := int(math.Round(m.springX)) - boxW/2
	if x > m.width-boxW {
		x = m.width - boxW
	}
	if x < 0 {
		x = 0
	}
	y := l.originY - feedbackGap - feedbackRows
	if y < 0 || y+feedbackRows > len(rows) {
		return
	}

	box := styles.Feedback.Width(cols).Render(f.Item.Icon)
	for r, line := range strings.Split(box, "\n") {
		if r >= feedbackRows {
			break
		}
		rows[y+r] = strings.Repeat(" ", x) + line
	}
}

// paintBottomBar writes the status line, the optional footer, and the jump
// prompt into the last rows of the buffer.
func (m *Model) paintBottomBar(rows []string) {
	if len(rows) < 2 {
		return
	}
	status := ""
	switch {
	case m.errMsg != "":
		status = styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg))
	case m.notice != "":
		status = styles.Info.Render(m.notice)
	}
	last := len(rows) - 1
	if m.jumpActive {
		rows[last] = styles.JumpPrompt.Render(m.jumpInput.View())
		if last >= 1 {
			rows[last-1] = status
		}
		return
	}
	rows[last] = status
	if m.showFooter && last >= 1 {
		rows[last-1] = styles.Footer.Render(
			"drag to reorder  / jump  ←/→ move  right-click copy  q quit",
		)
	}
}

// padRow pads or trims a rendered row to exactly the terminal width,
// measuring with ANSI-aware width so styled rows line up.
func padRow(row string, width int) string {
	w := lipgloss.Width(row)
	if w > width {
		return truncate.String(row, uint(width))
	}
	if w < width {
		return row + strings.Repeat(" ", width-w)
	}
	return row
}
