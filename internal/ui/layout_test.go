package ui

import (
	"testing"

	"github.com/atomicstack/dockbar/internal/dock"
)

func restFrames(n int) []dock.ItemFrame {
	frames := make([]dock.ItemFrame, n)
	for i := range frames {
		frames[i] = dock.ItemFrame{Index: i, Item: dock.Item{Icon: ">", Label: "item"}, Scale: 1.0}
	}
	return frames
}

func TestContentColsRestWidth(t *testing.T) {
	if got := contentCols(">", 1.0); got != baseContentCols {
		t.Fatalf("contentCols at rest = %d, want %d", got, baseContentCols)
	}
}

func TestContentColsGrowsWithScale(t *testing.T) {
	if got := contentCols(">", 1.3); got != 8 {
		t.Fatalf("contentCols at 1.3 = %d, want 8", got)
	}
	if got := contentCols(">", 0.8); got != baseContentCols {
		t.Fatalf("contentCols below rest = %d, want clamp to %d", got, baseContentCols)
	}
}

func TestContentColsWideIcon(t *testing.T) {
	if got := contentCols("abcdefgh", 1.0); got != 10 {
		t.Fatalf("contentCols wide icon = %d, want 10", got)
	}
}

func TestComputeLayoutCentersBoxes(t *testing.T) {
	l := computeLayout(restFrames(3), 40, 12)
	// three boxes of 8 columns plus two margins.
	if len(l.boxes) != 3 {
		t.Fatalf("boxes = %d, want 3", len(l.boxes))
	}
	if l.originX != 7 {
		t.Fatalf("originX = %d, want 7", l.originX)
	}
	for i, b := range l.boxes {
		wantX := 7 + i*9
		if b.x != wantX || b.width != 8 {
			t.Fatalf("box %d = {x:%d w:%d}, want {x:%d w:8}", i, b.x, b.width, wantX)
		}
	}
}

func TestComputeLayoutReservesFeedbackRows(t *testing.T) {
	l := computeLayout(restFrames(2), 40, 10)
	if l.originY < feedbackRows+feedbackGap {
		t.Fatalf("originY = %d, want at least %d", l.originY, feedbackRows+feedbackGap)
	}
}

func TestComputeLayoutDraggedItemAtRestSize(t *testing.T) {
	frames := restFrames(3)
	frames[1].Dragged = true
	frames[1].Scale = 1.3
	l := computeLayout(frames, 40, 12)
	if l.boxes[1].width != 8 {
		t.Fatalf("dragged box width = %d, want rest width 8", l.boxes[1].width)
	}
}

func TestHitTest(t *testing.T) {
	l := computeLayout(restFrames(3), 40, 12)
	y := l.originY + 1
	if got := l.hitTest(l.boxes[0].x, y); got != 0 {
		t.Fatalf("hitTest first box = %d, want 0", got)
	}
	if got := l.hitTest(l.boxes[2].x+l.boxes[2].width-1, y); got != 2 {
		t.Fatalf("hitTest last box edge = %d, want 2", got)
	}
	// the margin column between boxes belongs to nobody.
	if got := l.hitTest(l.boxes[0].x+l.boxes[0].width, y); got != -1 {
		t.Fatalf("hitTest margin = %d, want -1", got)
	}
	if got := l.hitTest(l.boxes[0].x, l.originY-1); got != -1 {
		t.Fatalf("hitTest above dock = %d, want -1", got)
	}
}

func TestSlotAtClampsToEnds(t *testing.T) {
	l := computeLayout(restFrames(3), 40, 12)
	if got := l.slotAt(0); got != 0 {
		t.Fatalf("slotAt left edge = %d, want 0", got)
	}
	if got := l.slotAt(39); got != 2 {
		t.Fatalf("slotAt right edge = %d, want 2", got)
	}
	center := l.boxes[1].x + l.boxes[1].width/2
	if got := l.slotAt(center); got != 1 {
		t.Fatalf("slotAt middle center = %d, want 1", got)
	}
}

func TestSlotAtEmptyLayout(t *testing.T) {
	var l layout
	if got := l.slotAt(10); got != -1 {
		t.Fatalf("slotAt on empty layout = %d, want -1", got)
	}
}
