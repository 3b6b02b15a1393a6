package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseCatalog(t *testing.T) {
	raw := []byte("- icon: \"T\"\n  label: terminal\n- label: browser\n- icon: \"X\"\n  label: \"\"\n")
	items, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Icon != "T" || items[0].Label != "terminal" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Icon != "•" {
		t.Fatalf("expected placeholder icon for missing icon, got %q", items[1].Icon)
	}
}

func TestParseCatalogRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("[]")); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if _, err := Parse([]byte("- icon: x\n  label: \"\"\n")); err == nil {
		t.Fatalf("expected error when no entry is usable")
	}
}

func TestParseCatalogRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte(": not yaml")); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestDefaultItemsNonEmpty(t *testing.T) {
	items := Default()
	if len(items) == 0 {
		t.Fatalf("expected built-in items")
	}
	for i, item := range items {
		if item.Icon == "" || item.Label == "" {
			t.Fatalf("item %d incomplete: %+v", i, item)
		}
	}
}

func TestWatcherEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	if err := os.WriteFile(path, []byte("- icon: a\n  label: one\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	w, err := NewWatcher(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(path, []byte("- icon: b\n  label: two\n- icon: c\n  label: three\n"), 0o644); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected watcher error: %v", evt.Err)
		}
		if len(evt.Items) != 2 {
			t.Fatalf("expected 2 reloaded items, got %d", len(evt.Items))
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for catalog event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	if err := os.WriteFile(path, []byte("- icon: a\n  label: one\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("create watcher: %v", err)
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected events channel closed after Stop/Wait")
	}
}
