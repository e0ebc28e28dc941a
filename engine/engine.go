package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jamieabc/stream-monitor/alert"
	"github.com/jamieabc/stream-monitor/clock"
	"github.com/jamieabc/stream-monitor/fault"
	"github.com/jamieabc/stream-monitor/payload"
	"github.com/jamieabc/stream-monitor/tail"
	"github.com/jamieabc/stream-monitor/window"
)

// Logger - leveled logging sink, satisfied by *logger.L
type Logger interface {
	Info(string)
	Warn(string)
	Flush()
}

// Notifier - interface for forwarding alert messages
type Notifier interface {
	Send(...interface{}) error
}

// Reporter - interface for receiving rolling average reports
type Reporter interface {
	Report(Report) error
}

// Report - rolling average at the moment of reporting
type Report struct {
	Count     uint64
	Size      int
	Average   float64
	Timestamp time.Time
}

func (r Report) String() string {
	return fmt.Sprintf("Rolling avg payload length (last %d): %.1f chars", r.Size, r.Average)
}

// Option - engine option
type Option func(*Engine)

// WithOpener - open source with opener instead of tail.Open
func WithOpener(opener tail.Opener) Option {
	return func(e *Engine) {
		e.open = opener
	}
}

// WithClock - wait for new records with clock
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithNotifier - forward alerts to notifier
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifiers = append(e.notifiers, n)
	}
}

// WithReporter - send reports to reporter
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporters = append(e.reporters, r)
	}
}

// Engine - tails a source and keeps rolling statistics of its payloads,
// one engine owns one source and is not safe for concurrent Process calls
type Engine struct {
	config    Config
	log       Logger
	out       io.Writer
	open      tail.Opener
	clock     clock.Clock
	scanner   *alert.Scanner
	window    window.Window
	notifiers []Notifier
	reporters []Reporter
	source    tail.Source
	count     uint64
	state     int32
}

const (
	alertPrefix = "ALERT (keyword): "
)

// New - new engine
func New(config Config, log Logger, out io.Writer, opts ...Option) (*Engine, error) {
	if err := config.Validate(); nil != err {
		return nil, err
	}

	scanner, err := alert.NewScanner(config.Patterns)
	if nil != err {
		return nil, err
	}

	w, err := window.New(config.WindowSize)
	if nil != err {
		return nil, err
	}

	e := &Engine{
		config:  config,
		log:     log,
		out:     out,
		open:    tail.Open,
		clock:   clock.NewClock(),
		scanner: scanner,
		window:  w,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Start - open source and position at its end
func (e *Engine) Start() error {
	if nil != e.source {
		return nil
	}
	e.setState(Initializing)

	src, err := e.open(e.config.SourcePath)
	if nil != err {
		if !errors.Is(err, fault.ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %s", fault.ErrSourceUnavailable, err)
		}
		return err
	}
	e.source = src

	msg := fmt.Sprintf("Consumer ready. Tailing %s ...", e.config.SourcePath)
	fmt.Fprintln(e.out, msg)
	e.log.Info(msg)

	e.setState(Tailing)
	return nil
}

// Run - process appended records until ctx is done, the only error returned
// is from opening source
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Start(); nil != err {
		return err
	}
	defer e.shutdown()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, ok, err := e.source.ReadLine()
		if nil != err {
			e.log.Warn(fmt.Sprintf("read %s with error: %s", e.config.SourcePath, err))
			ok = false
		}

		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-e.clock.After(e.config.PollInterval):
			}
			continue
		}

		e.Process(line)
	}
}

func (e *Engine) shutdown() {
	e.setState(ShuttingDown)

	if err := e.source.Close(); nil != err {
		e.log.Warn(fmt.Sprintf("close %s with error: %s", e.config.SourcePath, err))
	}
	e.log.Info(fmt.Sprintf("stop tailing %s after %d messages", e.config.SourcePath, e.Count()))
	e.log.Flush()

	e.setState(Terminated)
}

// Process - handle one record, returns false when record is blank
func (e *Engine) Process(record string) bool {
	if "" == strings.TrimSpace(record) {
		return false
	}

	e.setState(Processing)
	defer e.setState(Tailing)

	p := extract(record)
	e.window.Record(utf8.RuneCountInString(p))
	count := atomic.AddUint64(&e.count, 1)

	fmt.Fprintf(e.out, "Consumed: %s\n", p)

	if e.scanner.Enabled() {
		if phrase, matched := e.scanner.Match(p); matched {
			e.alert(p, phrase)
		}
	}

	if 0 == count%uint64(e.config.ReportEvery) {
		e.report(count)
	}

	return true
}

// surrounding whitespace is not part of payload, a record of only the
// separator still has an empty payload
func extract(record string) string {
	trimmed := strings.TrimSpace(record)
	if strings.Contains(trimmed, payload.Separator) {
		return payload.Extract(trimmed)
	}
	return strings.TrimRightFunc(payload.Extract(record), unicode.IsSpace)
}

// notifiers receive the message and the matched phrase
func (e *Engine) alert(p string, phrase string) {
	msg := alertPrefix + p
	fmt.Fprintln(e.out, msg)
	e.log.Warn(msg)

	for _, n := range e.notifiers {
		if err := n.Send(msg, phrase); nil != err {
			e.log.Warn(fmt.Sprintf("send alert with error: %s", err))
		}
	}
}

func (e *Engine) report(count uint64) {
	avg, err := e.window.Average()
	if nil != err {
		return
	}

	r := Report{
		Count:     count,
		Size:      e.window.Size(),
		Average:   avg,
		Timestamp: e.clock.Now(),
	}

	msg := r.String()
	fmt.Fprintln(e.out, msg)
	e.log.Info(msg)

	for _, reporter := range e.reporters {
		if err := reporter.Report(r); nil != err {
			e.log.Warn(fmt.Sprintf("send report with error: %s", err))
		}
	}
}

// Count - number of processed records
func (e *Engine) Count() uint64 {
	return atomic.LoadUint64(&e.count)
}

// Window - rolling window summary
func (e *Engine) Window() window.Summarizer {
	return e.window
}

// State - current lifecycle state
func (e *Engine) State() State {
	return State(atomic.LoadInt32(&e.state))
}

func (e *Engine) setState(s State) {
	atomic.StoreInt32(&e.state, int32(s))
}
