package dock

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Animation timings and scale ranges. The bounce channel is a weighted
// three-segment timeline: a quick grow, a squash below rest size, then an
// elastic settle back to 1.0.
const (
	HoverDuration     = 600 * time.Millisecond
	BounceDuration    = 1200 * time.Millisecond
	BreathingDuration = 3000 * time.Millisecond

	hoverScaleMax     = 1.3
	bounceScalePeak   = 1.3
	bounceScaleDip    = 0.8
	breathingScaleMax = 1.05
)

// Logical layout units shared with the renderer. An item box is BoxHeight
// units tall and never narrower than MinWidth; the icon inside it draws at
// IconSize, or DragIconSize for the floating copy that follows the pointer.
const (
	BoxHeight    = 48.0
	MinWidth     = 48.0
	Margin       = 8.0
	IconSize     = 24.0
	DragIconSize = 28.0
)

const unset = -1

// GlowThreshold is the scale above which the renderer brightens an idle
// item, the midpoint of the breathing range. Cell quantisation can swallow
// a 5% width change, so the pulse is also shown through styling.
const GlowThreshold = (1.0 + breathingScaleMax) / 2

// ItemFrame is the per-item render snapshot for one frame.
type ItemFrame struct {
	Index   int
	Item    Item
	Scale   float64
	Dragged bool
}

// Dock owns the ordered item list, the pointer interaction state, and the
// three animation channels, and resolves them into one composite scale per
// item. All methods are meant to be called from a single event loop; the
// dock does no locking of its own.
type Dock struct {
	items []Item

	hovered int
	dragged int
	target  int

	hover     *Channel
	bounce    *Channel
	breathing *Channel

	closed bool
}

// New builds a dock around the given items and starts the breathing channel,
// which repeats forward/reverse until Close.
func New(items []Item) *Dock {
	d := &Dock{
		items:   CloneItems(items),
		hovered: unset,
		dragged: unset,
		target:  unset,
		hover: newChannel("hover", HoverDuration,
			newTweenTimeline(1.0, hoverScaleMax, ease.OutElastic)),
		bounce: newChannel("bounce", BounceDuration,
			newSegmentTimeline(
				segment{weight: 0.25, tw: tweenOf(1.0, bounceScalePeak, ease.OutQuad)},
				segment{weight: 0.25, tw: tweenOf(bounceScalePeak, bounceScaleDip, ease.InOutQuad)},
				segment{weight: 0.50, tw: tweenOf(bounceScaleDip, 1.0, ease.OutElastic)},
			)),
		breathing: newChannel("breathing", BreathingDuration,
			newTweenTimeline(1.0, breathingScaleMax, ease.InOutQuad)),
	}
	d.breathing.repeat = true
	d.breathing.Play(Forward)
	return d
}

// Len reports the number of items.
func (d *Dock) Len() int { return len(d.items) }

// Items returns a copy of the current order.
func (d *Dock) Items() []Item { return CloneItems(d.items) }

// Item returns the item at position i.
func (d *Dock) Item(i int) Item { return d.items[i] }

// Hovered reports the hovered position, or -1.
func (d *Dock) Hovered() int { return d.hovered }

// Dragged reports the dragged position, or -1.
func (d *Dock) Dragged() int { return d.dragged }

// Target reports the last drop destination, or -1.
func (d *Dock) Target() int { return d.target }

func (d *Dock) valid(i int) bool {
	return i >= 0 && i < len(d.items)
}

// PointerEnter marks position i as hovered and plays the hover channel
// forward from its current progress. Out-of-range positions are declined.
func (d *Dock) PointerEnter(i int) bool {
	if d.closed || !d.valid(i) {
		return false
	}
	d.hovered = i
	d.hover.Play(Forward)
	return true
}

// PointerExit clears the hover and plays the hover channel in reverse from
// wherever it currently is. Calling it with nothing hovered changes nothing.
func (d *Dock) PointerExit() bool {
	if d.closed || d.hovered == unset {
		return false
	}
	d.hovered = unset
	d.hover.Play(Reverse)
	return true
}

// DragStart begins a drag of position i, restarting the bounce channel from
// its beginning. Declined while another drag is active.
func (d *Dock) DragStart(i int) bool {
	if d.closed || !d.valid(i) || d.dragged != unset {
		return false
	}
	d.dragged = i
	d.bounce.Restart()
	return true
}

// DragEnd clears the drag and target and plays the bounce channel in
// reverse from its current progress.
func (d *Dock) DragEnd() {
	if d.closed || d.dragged == unset {
		return
	}
	d.dragged = unset
	d.target = unset
	d.bounce.Play(Reverse)
}

// Drop reorders the item at src to dst using remove-then-insert semantics:
// the item is removed, every element between the two positions shifts by
// one, and the item is re-inserted so it ends up at position dst. Dropping
// an item onto itself, or supplying an out-of-range index, silently
// declines without touching any state.
func (d *Dock) Drop(src, dst int) bool {
	if d.closed || src == dst || !d.valid(src) || !d.valid(dst) {
		return false
	}
	item := d.items[src]
	d.items = append(d.items[:src], d.items[src+1:]...)
	d.items = append(d.items, Item{})
	copy(d.items[dst+1:], d.items[dst:])
	d.items[dst] = item
	d.target = dst
	return true
}

// Scale resolves the composite scale for position i: the breathing value
// always applies, the bounce value only while i is dragged, and the hover
// value only while i is hovered.
func (d *Dock) Scale(i int) float64 {
	s := d.breathing.Value()
	if i == d.dragged {
		s *= d.bounce.Value()
	}
	if i == d.hovered {
		s *= d.hover.Value()
	}
	return s
}

// Tick advances every channel by dt and reports whether any of them moved,
// collapsing the three progress sources into a single render signal.
func (d *Dock) Tick(dt time.Duration) bool {
	if d.closed {
		return false
	}
	moved := d.hover.Tick(dt)
	moved = d.bounce.Tick(dt) || moved
	moved = d.breathing.Tick(dt) || moved
	return moved
}

// Frame returns the render snapshot for the current order.
func (d *Dock) Frame() []ItemFrame {
	frames := make([]ItemFrame, len(d.items))
	for i, item := range d.items {
		frames[i] = ItemFrame{Index: i, Item: item, Scale: d.Scale(i), Dragged: i == d.dragged}
	}
	return frames
}

// SetItems replaces the dock contents, cancelling any in-flight hover or
// drag so no index can point outside the new order.
func (d *Dock) SetItems(items []Item) {
	if d.closed {
		return
	}
	d.PointerExit()
	if d.dragged != unset {
		d.DragEnd()
	}
	d.items = CloneItems(items)
}

// Close stops all three channels. Further ticks and events are no-ops.
func (d *Dock) Close() {
	if d.closed {
		return
	}
	d.hover.close()
	d.bounce.close()
	d.breathing.close()
	d.closed = true
}
