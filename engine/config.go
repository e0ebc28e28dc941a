package engine

import (
	"time"

	"github.com/jamieabc/stream-monitor/alert"
	"github.com/jamieabc/stream-monitor/fault"
)

// Config - engine settings
type Config struct {
	SourcePath   string
	WindowSize   int
	ReportEvery  int
	PollInterval time.Duration
	Patterns     []string
}

const (
	DefaultWindowSize   = 20
	DefaultReportEvery  = 5
	DefaultPollInterval = time.Second
)

// DefaultConfig - config with default values for source path
func DefaultConfig(sourcePath string) Config {
	patterns := make([]string, len(alert.DefaultPhrases))
	copy(patterns, alert.DefaultPhrases)

	return Config{
		SourcePath:   sourcePath,
		WindowSize:   DefaultWindowSize,
		ReportEvery:  DefaultReportEvery,
		PollInterval: DefaultPollInterval,
		Patterns:     patterns,
	}
}

// Validate - check config values
func (c Config) Validate() error {
	if "" == c.SourcePath {
		return fault.ErrEmptySourcePath
	}
	if 1 > c.WindowSize {
		return fault.ErrInvalidWindowSize
	}
	if 1 > c.ReportEvery {
		return fault.ErrInvalidReportInterval
	}
	if 0 >= c.PollInterval {
		return fault.ErrInvalidPollInterval
	}
	return nil
}
