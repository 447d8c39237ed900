// Package controller provides output adapters for displaying conversion progress and results.
package controller

import (
	m "github.com/mouse-blink/mapconv/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeConvert StartMode = iota
	ModeCheck
	ModeWatch
)

func (s StartMode) String() string {
	switch s {
	case ModeCheck:
		return "check"
	case ModeWatch:
		return "watch"
	default:
		return "convert"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithConvertMode sets the UI to conversion mode.
func WithConvertMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeConvert
	}
}

// WithCheckMode sets the UI to check mode, where outputs are compared but not written.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithWatchMode sets the UI to watch mode.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeConvert}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI displays conversion progress. Display methods may be called from
// several worker goroutines at once.
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayPlan(sources []m.Source, threads int)
	DisplayStarted(source m.Source)
	DisplayCompleted(report m.Report)
	DisplaySummary(reports []m.Report) error
	DisplayStats(path m.Path, stats m.Stats) error
}
