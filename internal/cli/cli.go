// Package cli parses command-line arguments into Options and maps usage
// problems to exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExitError carries the exit code the process should end with.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options are the parsed flags. Empty strings and a zero Tick mean "use
// the config file or its defaults".
type Options struct {
	ConfigPath string
	BoardPath  string
	ScriptPath string
	LogLevel   string
	LogFormat  string
	Tick       time.Duration
	Render     bool
	Direct     bool
}

// Parse processes args. It reports shouldExit when help was requested or
// no script was given.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("robogrid", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
robogrid - drive a robot across a grid with a small command script.

Usage:
  robogrid [options] SCRIPT

Arguments:
  SCRIPT
    Text file with one command per line (VAR, MOVER, SE, AJUDA,
    MOSTRAR OBSTACULOS, INICIAR TIMER).

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	boardFlag := flagSet.String("board", "", "Path to a board file (overrides the random board).")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	tickFlag := flagSet.Duration("tick", 0, "Delay between script lines, e.g. 1s or 200ms.")
	renderFlag := flagSet.Bool("render", false, "Draw the board after every line.")
	directFlag := flagSet.Bool("direct", false, "Run every line at once instead of one per tick.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected a single SCRIPT argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if *tickFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid tick: must not be negative"}
	}

	return &Options{
		ConfigPath: *configFlag,
		BoardPath:  *boardFlag,
		ScriptPath: flagSet.Arg(0),
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Tick:       *tickFlag,
		Render:     *renderFlag,
		Direct:     *directFlag,
	}, false, nil
}
