package ui

import (
	"math"

	"github.com/atomicstack/dockbar/internal/dock"
	"github.com/mattn/go-runewidth"
)

// The dock's logical units map onto terminal cells: an item box is
// dock.MinWidth units wide at rest and baseContentCols columns wide on
// screen, so one column covers MinWidth/baseContentCols units. The margin
// between boxes is one column, matching dock.Margin at that density.
const (
	baseContentCols = 6
	boxRows         = 4 // border, icon row, label row, border
	marginCols      = 1
	feedbackRows    = 3 // border, icon row, border
	feedbackGap     = 1
)

// itemBox is the horizontal extent of one rendered item, borders included.
type itemBox struct {
	index int
	x     int
	width int
}

// layout fixes where every item box lands for one frame. Mouse hit testing
// and View both read the same layout, so pointer indices always agree with
// what is on screen.
type layout struct {
	width   int
	height  int
	originX int
	originY int
	boxes   []itemBox
}

// contentCols returns the inner width in columns for an item at the given
// composite scale. The box never drops below its rest width, and always
// leaves a column of padding around a wide icon glyph.
func contentCols(icon string, scale float64) int {
	cols := int(math.Round(baseContentCols * scale))
	if cols < baseContentCols {
		cols = baseContentCols
	}
	if min := runewidth.StringWidth(icon) + 2; cols < min {
		cols = min
	}
	return cols
}

// computeLayout positions every item box for the given frame snapshot.
// A dragged item is laid out at its rest size: the renderer paints a
// fixed-size placeholder in that slot while the floating copy follows the
// pointer.
func computeLayout(frames []dock.ItemFrame, width, height int) layout {
	l := layout{width: width, height: height, boxes: make([]itemBox, len(frames))}

	total := 0
	widths := make([]int, len(frames))
	for i, f := range frames {
		cols := baseContentCols
		if !f.Dragged {
			cols = contentCols(f.Item.Icon, f.Scale)
		}
		widths[i] = cols + 2
		total += widths[i]
		if i > 0 {
			total += marginCols
		}
	}

	l.originX = (width - total) / 2
	if l.originX < 0 {
		l.originX = 0
	}
	l.originY = (height - boxRows) / 2
	if l.originY < feedbackRows+feedbackGap {
		l.originY = feedbackRows + feedbackGap
	}

	x := l.originX
	for i := range frames {
		l.boxes[i] = itemBox{index: i, x: x, width: widths[i]}
		x += widths[i] + marginCols
	}
	return l
}

// hitTest maps a pointer position to the item under it, or -1.
func (l layout) hitTest(x, y int) int {
	if len(l.boxes) == 0 || y < l.originY || y >= l.originY+boxRows {
		return -1
	}
	for _, b := range l.boxes {
		if x >= b.x && x < b.x+b.width {
			return b.index
		}
	}
	return -1
}

// slotAt maps a pointer column to the nearest drop slot. Unlike hitTest it
// never returns -1: positions before the dock clamp to the first slot,
// positions past it to the last, and gaps resolve to whichever neighbour's
// center is closer.
func (l layout) slotAt(x int) int {
	if len(l.boxes) == 0 {
		return -1
	}
	best := 0
	bestDist := math.MaxInt
	for _, b := range l.boxes {
		center := b.x + b.width/2
		dist := x - center
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			bestDist = dist
			best = b.index
		}
	}
	return best
}
