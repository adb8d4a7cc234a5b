package scheduler

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"robogrid/internal/interpreter"
)

// DefaultTick is the cadence of both the step ticker and the session clock.
const DefaultTick = time.Second

// Interpreter runs a single command line.
type Interpreter interface {
	Interpret(line string) error
}

type Options struct {
	// Tick is the step cadence. Zero means DefaultTick.
	Tick time.Duration
	// Clock is the session clock cadence. Zero means Tick.
	Clock time.Duration
	// OnTick, if set, runs after every step.
	OnTick func()
	Logger *slog.Logger
}

// Scheduler executes a script against a session. It is not safe for
// concurrent use; Start, Stop and Step must be called from the goroutine
// running Run, or while Run is not running.
type Scheduler struct {
	session *interpreter.Session
	interp  Interpreter
	script  []string
	opts    Options
	logger  *slog.Logger

	cursor  int
	running bool
	elapsed time.Duration
}

func New(session *interpreter.Session, interp Interpreter, script []string, opts Options) *Scheduler {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Clock <= 0 {
		opts.Clock = opts.Tick
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		session: session,
		interp:  interp,
		script:  script,
		opts:    opts,
		logger:  logger,
	}
}

// Start begins a run from the first line and resets the clock. It does
// nothing while a run is in progress.
func (s *Scheduler) Start() {
	if s.running {
		s.logger.Debug("scheduler already running")
		return
	}
	s.running = true
	s.cursor = 0
	s.elapsed = 0
	s.session.Log("Jogo iniciado!", false)
}

// Stop ends the run. The line in progress, if any, finishes normally.
func (s *Scheduler) Stop() {
	s.running = false
}

// Reset stops the run and resets the session.
func (s *Scheduler) Reset() error {
	s.Stop()
	s.cursor = 0
	s.elapsed = 0
	return s.session.Reset()
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Elapsed is the session clock.
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}

// Step performs one tick: it interprets the next line, or reports
// completion when the script is exhausted. Failed lines are already on the
// console and do not stop the run. It reports whether the run continues.
func (s *Scheduler) Step() bool {
	if !s.running {
		return false
	}
	if s.cursor >= len(s.script) {
		s.running = false
		s.session.Log("Todos os comandos foram executados.", false)
		return false
	}
	line := strings.TrimSpace(s.script[s.cursor])
	s.cursor++
	if err := s.interp.Interpret(line); err != nil {
		s.logger.Debug("line failed", "line", s.cursor, "err", err)
	}
	if s.opts.OnTick != nil {
		s.opts.OnTick()
	}
	if s.session.Won() {
		s.running = false
	}
	return s.running
}

// Run starts the scheduler and services both tickers until the script is
// done, the robot reaches the target, or ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	steps := time.NewTicker(s.opts.Tick)
	defer steps.Stop()
	clock := time.NewTicker(s.opts.Clock)
	defer clock.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-clock.C:
			s.elapsed += s.opts.Clock
		case <-steps.C:
			if !s.Step() {
				return nil
			}
		}
	}
}
