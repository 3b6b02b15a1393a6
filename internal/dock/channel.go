package dock

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Direction selects which way a channel's progress moves on each tick.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// timeline maps a normalized progress fraction in [0,1] to an output value.
type timeline interface {
	at(frac float64) float64
}

// tweenTimeline is a single tween over the whole channel duration.
type tweenTimeline struct {
	tw *gween.Tween
}

func newTweenTimeline(from, to float64, curve ease.TweenFunc) *tweenTimeline {
	return &tweenTimeline{tw: tweenOf(from, to, curve)}
}

func tweenOf(from, to float64, curve ease.TweenFunc) *gween.Tween {
	return gween.New(float32(from), float32(to), 1, curve)
}

func (t *tweenTimeline) at(frac float64) float64 {
	v, _ := t.tw.Set(float32(clampFrac(frac)))
	return float64(v)
}

// segment is one weighted slice of a multi-segment timeline. The tween runs
// over a normalized duration of 1; the weight decides how much of the parent
// timeline it occupies.
type segment struct {
	weight float64
	tw     *gween.Tween
}

// segmentTimeline chains weighted tweens. Global progress is mapped to a
// segment by cumulative weight and renormalized to that segment's local
// [0,1] range before the segment's curve applies.
type segmentTimeline struct {
	segs  []segment
	total float64
}

func newSegmentTimeline(segs ...segment) *segmentTimeline {
	var total float64
	for _, s := range segs {
		total += s.weight
	}
	return &segmentTimeline{segs: segs, total: total}
}

func (s *segmentTimeline) at(frac float64) float64 {
	frac = clampFrac(frac)
	pos := frac * s.total
	var start float64
	for i, seg := range s.segs {
		end := start + seg.weight
		if pos < end || i == len(s.segs)-1 {
			local := 0.0
			if seg.weight > 0 {
				local = (pos - start) / seg.weight
			}
			v, _ := seg.tw.Set(float32(clampFrac(local)))
			return float64(v)
		}
		start = end
	}
	return 1
}

func clampFrac(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Channel is a named, time-driven progress source. Progress runs between 0
// and the channel duration; the timeline turns the normalized progress into
// a scale value. A channel at rest holds its boundary value until played
// again; reversing mid-flight continues from the current progress, so the
// output curve never jumps.
type Channel struct {
	name     string
	duration time.Duration
	line     timeline

	elapsed time.Duration
	dir     Direction
	playing bool
	repeat  bool
	closed  bool
}

func newChannel(name string, duration time.Duration, line timeline) *Channel {
	return &Channel{name: name, duration: duration, line: line, dir: Forward}
}

// Name identifies the channel ("hover", "bounce", "breathing").
func (c *Channel) Name() string { return c.name }

// Play starts or redirects playback in the given direction without touching
// the current progress.
func (c *Channel) Play(dir Direction) {
	if c.closed {
		return
	}
	c.dir = dir
	c.playing = true
}

// Restart rewinds progress to zero and plays forward.
func (c *Channel) Restart() {
	if c.closed {
		return
	}
	c.elapsed = 0
	c.dir = Forward
	c.playing = true
}

// Tick advances progress by dt and reports whether the channel moved.
// Repeating channels reflect any overshoot into the new direction at either
// boundary, so the phase keeps time across flips regardless of frame
// jitter; one-shot channels stop and hold.
func (c *Channel) Tick(dt time.Duration) bool {
	if c.closed || !c.playing || dt <= 0 {
		return false
	}
	if c.dir == Forward {
		c.elapsed += dt
	} else {
		c.elapsed -= dt
	}
	for c.playing {
		if c.dir == Forward && c.elapsed >= c.duration {
			if !c.repeat {
				c.elapsed = c.duration
				c.playing = false
				break
			}
			c.elapsed = 2*c.duration - c.elapsed
			c.dir = Reverse
			continue
		}
		if c.dir == Reverse && c.elapsed <= 0 {
			if !c.repeat {
				c.elapsed = 0
				c.playing = false
				break
			}
			c.elapsed = -c.elapsed
			c.dir = Forward
			continue
		}
		break
	}
	return true
}

// Progress reports normalized progress in [0,1].
func (c *Channel) Progress() float64 {
	if c.duration <= 0 {
		return 0
	}
	return clampFrac(float64(c.elapsed) / float64(c.duration))
}

// Value reports the timeline output at the current progress.
func (c *Channel) Value() float64 {
	return c.line.at(c.Progress())
}

// Playing reports whether the next tick will move the channel.
func (c *Channel) Playing() bool { return c.playing && !c.closed }

func (c *Channel) close() {
	c.playing = false
	c.closed = true
}
