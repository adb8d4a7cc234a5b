package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"robogrid/internal/cli"
	"robogrid/internal/config"
	"robogrid/internal/interpreter"
	"robogrid/internal/logging"
	"robogrid/internal/scheduler"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the session, interpreter and scheduler and executes one script.
// The board goes to outW, log records to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, logW, nil)
	logger.Debug("configuration loaded", "config", cfg)

	setup, err := boardSetup(cfg)
	if err != nil {
		return err
	}

	session, err := interpreter.NewSession(setup, logger, func(s *interpreter.Session) {
		fmt.Fprintf(outW, "Chegou ao destino em %s\n", s.Board.Robot())
	})
	if err != nil {
		return err
	}
	interp, err := interpreter.New(session)
	if err != nil {
		return err
	}

	script, err := readScript(opts.ScriptPath)
	if err != nil {
		return err
	}
	session.Log("Script carregado com sucesso.", false)

	// Direct mode runs the script at once. No starter is attached, so
	// INICIAR TIMER there does not replay the script.
	if opts.Direct {
		failed := scheduler.RunDirect(session, interp, script)
		logger.Debug("direct run finished", "lines", len(script), "failed", failed)
		printResult(outW, session)
		return nil
	}

	var sched *scheduler.Scheduler
	sched = scheduler.New(session, interp, script, scheduler.Options{
		Tick:   cfg.Tick,
		Clock:  time.Second,
		Logger: logger,
		OnTick: func() {
			if opts.Render {
				session.Board.Display(outW, sched.Elapsed())
			}
		},
	})
	interp.SetStarter(sched)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	printResult(outW, session)
	return nil
}

func loadConfig(opts *cli.Options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.BoardPath != "" {
		cfg.Layout = opts.BoardPath
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if opts.Tick > 0 {
		cfg.Tick = opts.Tick
	}
	return cfg, cfg.Validate()
}

func boardSetup(cfg config.Config) (interpreter.Setup, error) {
	if cfg.Layout != "" {
		f, err := os.Open(cfg.Layout)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		spec, err := interpreter.ParseBoard(cfg.Layout, f)
		if err != nil {
			return nil, fmt.Errorf("load board: %w", err)
		}
		return interpreter.FixedSetup(spec), nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return interpreter.RandomSetup{
		Size:      cfg.BoardSize,
		Obstacles: cfg.Obstacles,
		Robot:     interpreter.Position{X: cfg.Robot[0], Y: cfg.Robot[1]},
		Target:    interpreter.Position{X: cfg.Target[0], Y: cfg.Target[1]},
		Solvable:  cfg.Solvable,
		Rand:      rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scheduler.LoadScript(f)
}

func printResult(w io.Writer, s *interpreter.Session) {
	fmt.Fprintf(w, "Robot final position: %s\n", s.Board.Robot())
}
