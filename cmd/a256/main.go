// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/ezrec/a256/cpu"
	"github.com/ezrec/a256/emulator"
	aio "github.com/ezrec/a256/io"
	"github.com/ezrec/a256/translate"
)

var f = translate.From

var (
	ErrArguments = errors.New(f("unknown arguments"))
	ErrNoSource  = errors.New(f("no source file, use -c"))
)

const (
	EXIT_FAILURE = 1 // Compile or runtime error.
	EXIT_USAGE   = 2 // Bad flags.
)

// config is the command line, with defaults from the environment.
type config struct {
	compile string
	verbose bool
	steps   int
	arena   int
	checked bool
	log     string
}

func parse(args []string, stderr io.Writer) (cfg config, err error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.compile, "c", "", ".a256 file to compile and run")
	fs.BoolVar(&cfg.verbose, "v", env.Bool("A256_VERBOSE"), "Verbose mode, traces every instruction")
	fs.IntVar(&cfg.steps, "n", env.Int("A256_STEPS", 0), "Step limit, 0 for unlimited")
	fs.IntVar(&cfg.arena, "m", env.Int("A256_ARENA", emulator.ARENA_SIZE), "Arena size in bytes")
	fs.BoolVar(&cfg.checked, "checked", env.Bool("A256_CHECKED"), "Bounds check every memory access")
	fs.StringVar(&cfg.log, "log", env.Str("A256_LOG", "console"), "Log format, console or json")

	err = fs.Parse(args[1:])
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = fmt.Errorf("%w: %v", ErrArguments, fs.Args())
		return
	}

	if len(cfg.compile) == 0 {
		err = ErrNoSource
	}
	return
}

// run the a256 command, and return the process exit status.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cfg, err := parse(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", args[0], err)
		return EXIT_USAGE
	}

	logger, err := newLogger(cfg.log, cfg.verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", args[0], err)
		return EXIT_USAGE
	}

	source, err := os.ReadFile(cfg.compile)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", args[0], err)
		return EXIT_FAILURE
	}

	emu, err := emulator.NewEmulator(cfg.arena, cfg.checked, &aio.Console{Output: stdout})
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", args[0], err)
		return EXIT_FAILURE
	}
	defer emu.Close()

	emu.Verbose = cfg.verbose
	emu.SetLogger(logger)

	err = emu.Load(string(source))
	var syntax *cpu.ErrSyntax
	if errors.As(err, &syntax) {
		line, column := emulator.Position(string(source), syntax.Offset)
		fmt.Fprintf(stderr, "%v:%d:%d: %v\n", cfg.compile, line, column, syntax.Err)
		return EXIT_FAILURE
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", cfg.compile, err)
		return EXIT_FAILURE
	}

	err = emu.Run(cfg.steps)
	if err != nil {
		var rt *emulator.ErrRuntime
		if errors.As(err, &rt) && rt.LineNo > 0 {
			fmt.Fprintf(stderr, "%v:%d:%d: %v: %v\n", cfg.compile, rt.LineNo, rt.Column, rt.Mnemonic, rt.Err)
		} else {
			fmt.Fprintf(stderr, "%v: %v\n", cfg.compile, err)
		}
		logger.Debug().Int("ticks", emu.Ticks).Str("registers", emu.Machine.String()).Msg("failed")
		return EXIT_FAILURE
	}

	logger.Info().
		Int32("exit", emu.ExitStatus).
		Int("ticks", emu.Ticks).
		Msg(cfg.compile)

	return int(emu.ExitStatus)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
