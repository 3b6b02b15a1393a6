package main

import (
	"testing"

	"github.com/atomicstack/dockbar/internal/app"
	"github.com/atomicstack/dockbar/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesOptions(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ItemsPath:  "items.yaml",
			FPS:        60,
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Args: []string{"--items", "items.yaml"},
	}

	payload := startupTracePayload(cfg)

	if payload["items"] != "items.yaml" {
		t.Fatalf("expected items path %q, got %v", "items.yaml", payload["items"])
	}
	if payload["fps"] != 60 {
		t.Fatalf("expected fps 60, got %v", payload["fps"])
	}
	if payload["width"] != 80 {
		t.Fatalf("expected width 80, got %v", payload["width"])
	}
	if payload["height"] != 24 {
		t.Fatalf("expected height 24, got %v", payload["height"])
	}
	if payload["footer"] != true {
		t.Fatalf("expected footer true, got %v", payload["footer"])
	}
	if payload["trace"] != true {
		t.Fatalf("expected trace true, got %v", payload["trace"])
	}
	if payload["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", payload["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 2 || argv[0] != "--items" {
		t.Fatalf("expected argv echoed in payload, got %v", payload["argv"])
	}
}
