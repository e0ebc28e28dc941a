package producer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jamieabc/stream-monitor/clock"
	"github.com/jamieabc/stream-monitor/fault"
	"github.com/jamieabc/stream-monitor/payload"
)

const (
	timeFormat = "2006-01-02 15:04:05.000"
	tag        = "producer"
)

// Logger - logging sink for producer lifecycle
type Logger interface {
	Info(string)
	Flush()
}

// Producer - appends generated messages to a log file
type Producer struct {
	path      string
	interval  time.Duration
	generator *Generator
	log       Logger
	clock     clock.Clock
	count     uint64
}

// New - new producer, interval must be positive
func New(path string, interval time.Duration, generator *Generator, log Logger, c clock.Clock) (*Producer, error) {
	if "" == path {
		return nil, fault.ErrEmptySourcePath
	}
	if 0 >= interval {
		return nil, fault.ErrInvalidPollInterval
	}

	return &Producer{
		path:      path,
		interval:  interval,
		generator: generator,
		log:       log,
		clock:     c,
	}, nil
}

// Record - format message the way producer writes it
func Record(t time.Time, message string) string {
	return fmt.Sprintf("%s | INFO | %s%s%s\n", t.Format(timeFormat), tag, payload.Separator, message)
}

// Run - append one message every interval until ctx is done
func (p *Producer) Run(ctx context.Context) error {
	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("open %s: %w: %s", p.path, fault.ErrSourceUnavailable, err)
	}
	defer f.Close()

	p.log.Info(fmt.Sprintf("start producing to %s every %s", p.path, p.interval))

	for {
		message := p.generator.Next()
		if _, err := f.WriteString(Record(p.clock.Now(), message)); nil != err {
			return err
		}
		p.count++
		p.log.Info(message)

		select {
		case <-ctx.Done():
			p.log.Info(fmt.Sprintf("stop producing after %d messages", p.count))
			p.log.Flush()
			return nil
		case <-p.clock.After(p.interval):
		}
	}
}

// Count - number of messages written
func (p *Producer) Count() uint64 {
	return p.count
}
