package events

import "github.com/atomicstack/dockbar/internal/logging"

type DockTracer struct{}

type CatalogTracer struct{}

type UITracer struct{}

var (
	Dock    = DockTracer{}
	Catalog = CatalogTracer{}
	UI      = UITracer{}
)

func (DockTracer) Hover(index int, label string) {
	logging.Trace("dock.hover", map[string]interface{}{"index": index, "label": label})
}

func (DockTracer) HoverEnd() {
	logging.Trace("dock.hover-end", nil)
}

func (DockTracer) DragStart(index int, label string) {
	logging.Trace("dock.drag-start", map[string]interface{}{"index": index, "label": label})
}

func (DockTracer) DragEnd(index int) {
	logging.Trace("dock.drag-end", map[string]interface{}{"index": index})
}

func (DockTracer) Drop(src, dst int, accepted bool) {
	logging.Trace("dock.drop", map[string]interface{}{
		"src":      src,
		"dst":      dst,
		"accepted": accepted,
	})
}

func (CatalogTracer) Loaded(path string, count int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"path": path, "count": count})
}

func (CatalogTracer) Reloaded(count int) {
	logging.Trace("catalog.reloaded", map[string]interface{}{"count": count})
}

func (CatalogTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]interface{}{"error": err.Error()})
}

func (UITracer) Jump(query string, index int) {
	logging.Trace("ui.jump", map[string]interface{}{"query": query, "index": index})
}

func (UITracer) Clipboard(label string) {
	logging.Trace("ui.clipboard", map[string]interface{}{"label": label})
}
