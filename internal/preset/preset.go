// Package preset loads canned metric selections: the built-in scenarios and
// user-supplied selection files.
package preset

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/cvsscalc/internal/cvss"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Preset is a named metric selection. Metrics may be keyed by vector key
// ("AV"), field name ("AttackVector", "attack_vector") or display name
// ("Attack Vector"); values may be full names or abbreviations. Vector is an
// alternative to Metrics.
type Preset struct {
	Name        string            `yaml:"name"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Vector      string            `yaml:"vector"`
	Metrics     map[string]string `yaml:"metrics"`
}

// File is a selection file read from disk.
type File struct {
	FilePath string
	Hash     string
	Preset   *Preset
}

// LoadBuiltin loads a built-in preset by name.
func LoadBuiltin(name string) (*Preset, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("preset.LoadBuiltin: unknown preset %q: %w", name, err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset.LoadBuiltin: parse %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return &p, nil
}

// List returns the names of all built-in presets, sorted.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n := e.Name(); strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadFile reads a YAML or JSON selection file and computes its SHA-256 hash.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset.LoadFile: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset.LoadFile: parse %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	h := sha256.Sum256(data)
	return &File{
		FilePath: path,
		Hash:     fmt.Sprintf("sha256:%x", h),
		Preset:   &p,
	}, nil
}

// Selection converts the preset into a metric selection. Metrics left out are
// left unset so that scoring reports them.
func (p *Preset) Selection() (cvss.Selection, error) {
	var sel cvss.Selection
	if p.Vector != "" {
		if len(p.Metrics) > 0 {
			return sel, fmt.Errorf("preset %q: vector and metrics are mutually exclusive", p.Name)
		}
		sel, err := cvss.ParseVector(p.Vector)
		if err != nil {
			return sel, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		return sel, nil
	}

	keys := make([]string, 0, len(p.Metrics))
	for k := range p.Metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]string)
	for _, k := range keys {
		m, ok := metricFor(k)
		if !ok {
			return sel, fmt.Errorf("preset %q: unknown metric %q", p.Name, k)
		}
		if prev, dup := seen[m.Key]; dup {
			return sel, fmt.Errorf("preset %q: metric %s given twice (%q, %q)", p.Name, m.Key, prev, k)
		}
		seen[m.Key] = k
		if err := sel.Set(m.Key, p.Metrics[k]); err != nil {
			return sel, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return sel, nil
}

func metricFor(name string) (cvss.Metric, bool) {
	n := normalize(name)
	for _, m := range cvss.Metrics() {
		if n == normalize(m.Key) || n == normalize(m.Field) || n == normalize(m.Name) {
			return m, true
		}
	}
	return cvss.Metric{}, false
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
