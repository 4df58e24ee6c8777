// Package modelcfg reads and writes the shared agent-gateway
// configuration document (openclaw.json). The document is owned by the
// gateway; this package touches only the active-model field and the
// per-skill enablement entries, preserving every other key it finds.
package modelcfg

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mrz1836/warroom/internal/constants"
	"github.com/mrz1836/warroom/internal/docstore"
)

// Config provides scoped access to the shared configuration document.
type Config struct {
	doc *docstore.Document[map[string]any]
}

// New creates a Config backed by openclaw.json under configDir.
func New(configDir string) *Config {
	return &Config{
		doc: docstore.New(filepath.Join(configDir, constants.OpenClawFile), func() map[string]any {
			return map[string]any{}
		}),
	}
}

// Models returns the distinct model identifiers known to the gateway:
// the primary model, its fallbacks in declaration order, then any
// per-model override keys sorted.
func (c *Config) Models() []string {
	cfg := c.doc.Read()
	model := dig(cfg, "agents", "defaults", "model")

	candidates := make([]string, 0, 8)
	if primary, ok := model["primary"].(string); ok {
		candidates = append(candidates, primary)
	}
	if fallbacks, ok := model["fallbacks"].([]any); ok {
		for _, f := range fallbacks {
			if s, ok := f.(string); ok {
				candidates = append(candidates, s)
			}
		}
	}
	overrides := make([]string, 0, 4)
	for name := range dig(cfg, "agents", "defaults", "models") {
		overrides = append(overrides, name)
	}
	sort.Strings(overrides)
	candidates = append(candidates, overrides...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, m := range candidates {
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// SetModel writes the primary model identifier, creating the nested
// structure as needed.
func (c *Config) SetModel(model string) error {
	_, err := c.doc.Update(func(cfg map[string]any) (map[string]any, error) {
		ensure(ensure(ensure(cfg, "agents"), "defaults"), "model")["primary"] = model
		return cfg, nil
	})
	return err
}

// ActiveModel returns the primary model identifier with the provider
// prefix stripped for display, or "unknown" when unset.
func (c *Config) ActiveModel() string {
	model := dig(c.doc.Read(), "agents", "defaults", "model")
	primary, ok := model["primary"].(string)
	if !ok || primary == "" {
		primary = "unknown"
	}
	return strings.ReplaceAll(primary, "anthropic/", "")
}

// SkillEnabled reports whether a skill is enabled in the shared
// configuration. Skills without an entry default to enabled.
func (c *Config) SkillEnabled(skillID string) bool {
	entry, ok := dig(c.doc.Read(), "skills", "entries")[skillID].(map[string]any)
	if !ok {
		return true
	}
	enabled, ok := entry["enabled"].(bool)
	if !ok {
		return true
	}
	return enabled
}

// SetSkillEnabled updates a skill's enablement entry, preserving any
// other keys the gateway keeps on it.
func (c *Config) SetSkillEnabled(skillID string, enabled bool) error {
	_, err := c.doc.Update(func(cfg map[string]any) (map[string]any, error) {
		entries := ensure(ensure(cfg, "skills"), "entries")
		entry, ok := entries[skillID].(map[string]any)
		if !ok {
			entry = map[string]any{}
		}
		entry["enabled"] = enabled
		entries[skillID] = entry
		return cfg, nil
	})
	return err
}

// dig walks nested objects by key, returning an empty map when any hop
// is missing or not an object.
func dig(m map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		next, ok := m[key].(map[string]any)
		if !ok {
			return map[string]any{}
		}
		m = next
	}
	return m
}

// ensure returns the nested object at key, creating it when absent or
// replacing it when a non-object occupies the slot.
func ensure(m map[string]any, key string) map[string]any {
	if next, ok := m[key].(map[string]any); ok {
		return next
	}
	next := map[string]any{}
	m[key] = next
	return next
}
