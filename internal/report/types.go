// Package report defines the output record of a cvsscalc calculation.
package report

import "github.com/dshills/cvsscalc/internal/cvss"

// Report is the top-level output object.
type Report struct {
	Tool     string         `json:"tool" yaml:"tool"`
	Version  string         `json:"version" yaml:"version"`
	Input    Input          `json:"input" yaml:"input"`
	Metrics  cvss.Selection `json:"metrics" yaml:"metrics"`
	Result   cvss.Result    `json:"result" yaml:"result"`
	Priority Priority       `json:"priority" yaml:"priority"`
}

// Input records where the metric selection came from.
type Input struct {
	Source   Source `json:"source" yaml:"source"`
	Preset   string `json:"preset,omitempty" yaml:"preset,omitempty"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	FileHash string `json:"file_hash,omitempty" yaml:"file_hash,omitempty"`
}
