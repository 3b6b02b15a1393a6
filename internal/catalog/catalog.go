// Package catalog loads the dock's item set from a YAML file and watches it
// for edits.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/dockbar/internal/dock"
	"gopkg.in/yaml.v3"
)

type entry struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
}

// Default returns the built-in item set used when no catalog file is
// configured.
func Default() []dock.Item {
	return []dock.Item{
		{Icon: "\U0001F5A5", Label: "terminal"},
		{Icon: "\U0001F310", Label: "browser"},
		{Icon: "\U0001F4E7", Label: "mail"},
		{Icon: "\U0001F3B5", Label: "music"},
		{Icon: "\U0001F4C1", Label: "files"},
		{Icon: "⚙", Label: "settings"},
	}
}

// Load reads a YAML catalog file: a sequence of {icon, label} entries.
// Entries without a label are skipped; entries without an icon get a bullet
// placeholder. An empty catalog is an error.
func Load(path string) ([]dock.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes catalog YAML. Split out from Load so tests and the watcher
// can feed bytes directly.
func Parse(raw []byte) ([]dock.Item, error) {
	var entries []entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	items := make([]dock.Item, 0, len(entries))
	for _, e := range entries {
		label := strings.TrimSpace(e.Label)
		if label == "" {
			continue
		}
		icon := strings.TrimSpace(e.Icon)
		if icon == "" {
			icon = "•"
		}
		items = append(items, dock.Item{Icon: icon, Label: label})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog has no usable entries")
	}
	return items, nil
}
