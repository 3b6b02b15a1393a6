package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/dockbar/internal/catalog"
	"github.com/atomicstack/dockbar/internal/dock"
	"github.com/atomicstack/dockbar/internal/logging/events"
	"github.com/atomicstack/dockbar/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// frameMsg drives the animation clock at the configured frame rate.
type frameMsg struct {
	now time.Time
}

// catalogEventMsg wraps a catalog reload for the message loop.
type catalogEventMsg struct {
	event catalog.Event
}

// catalogDoneMsg signals that the catalog watcher has shut down.
type catalogDoneMsg struct{}

// clipboardResultMsg reports the outcome of a copy-to-clipboard command.
type clipboardResultMsg struct {
	label string
	err   error
}

// noticeFadeMsg clears the transient status notice.
type noticeFadeMsg struct{}

const (
	noticeFadeDelay = 2 * time.Second
	// maxFrameDelta guards against huge catch-up jumps after a suspended
	// terminal: anything longer is treated as a single normal frame.
	maxFrameDelta = 250 * time.Millisecond

	springFrequency = 8.0
	springDamping   = 0.6
)

// Model implements the Bubble Tea model for the dock.
type Model struct {
	dock *dock.Dock

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	fps         int
	showFooter  bool

	watcher *catalog.Watcher

	layout    layout
	lastFrame time.Time

	pointerX int
	pointerY int
	dragSlot int

	spring  harmonica.Spring
	springX float64
	springV float64

	jumpActive bool
	jumpInput  textinput.Model

	notice string
	errMsg string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around a fresh dock state machine.
func NewModel(items []dock.Item, width, height, fps int, showFooter bool, watcher *catalog.Watcher) *Model {
	if fps <= 0 {
		fps = 30
	}
	ti := textinput.New()
	ti.Placeholder = "jump to item"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	m := &Model{
		dock:       dock.New(items),
		fps:        fps,
		showFooter: showFooter,
		watcher:    watcher,
		dragSlot:   -1,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		jumpInput:  ti,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Dock exposes the underlying state machine for tests.
func (m *Model) Dock() *dock.Dock {
	return m.dock
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleFrame()}
	if m.watcher != nil {
		cmds = append(cmds, waitForCatalogEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):           m.handleFrameMsg,
		reflect.TypeOf(catalogEventMsg{}):    m.handleCatalogEventMsg,
		reflect.TypeOf(catalogDoneMsg{}):     m.handleCatalogDoneMsg,
		reflect.TypeOf(clipboardResultMsg{}): m.handleClipboardResultMsg,
		reflect.TypeOf(noticeFadeMsg{}):      m.handleNoticeFadeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) scheduleFrame() tea.Cmd {
	interval := time.Second / time.Duration(m.fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{now: t}
	})
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	dt := time.Second / time.Duration(m.fps)
	if !m.lastFrame.IsZero() {
		if elapsed := frame.now.Sub(m.lastFrame); elapsed > 0 && elapsed < maxFrameDelta {
			dt = elapsed
		}
	}
	m.lastFrame = frame.now

	m.dock.Tick(dt)
	if m.dock.Dragged() >= 0 {
		m.springX, m.springV = m.spring.Update(m.springX, m.springV, float64(m.pointerX))
	}
	m.refreshLayout()
	return m.scheduleFrame()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.refreshLayout()
	return nil
}

func (m *Model) refreshLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.layout = computeLayout(m.dock.Frame(), m.width, m.height)
}

func waitForCatalogEvent(w *catalog.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return catalogDoneMsg{}
		}
		return catalogEventMsg{event: evt}
	}
}

func (m *Model) handleCatalogEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(catalogEventMsg)
	if !ok {
		return nil
	}
	m.applyCatalogEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForCatalogEvent(m.watcher)
	}
	return nil
}

func (m *Model) applyCatalogEvent(evt catalog.Event) {
	if evt.Err != nil {
		m.errMsg = "catalog: " + evt.Err.Error()
		events.Catalog.Error(evt.Err)
		return
	}
	m.errMsg = ""
	m.dragSlot = -1
	m.dock.SetItems(evt.Items)
	m.refreshLayout()
	events.Catalog.Reloaded(len(evt.Items))
}

func (m *Model) handleCatalogDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) handleClipboardResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(clipboardResultMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		m.errMsg = "clipboard: " + res.err.Error()
		return nil
	}
	m.notice = "copied " + res.label
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

func (m *Model) handleNoticeFadeMsg(tea.Msg) tea.Cmd {
	m.notice = ""
	return nil
}
