// Command turing loads a Turing machine description and runs it step by step
// on the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsabgr/turing"
	"github.com/itsabgr/turing/internal/config"
	"github.com/itsabgr/turing/internal/console"
	"github.com/itsabgr/turing/internal/logs"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	logger, closeLog, err := logs.New(logs.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Journal: cfg.LogJournal,
	}, stderr)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	program, err := turing.LoadFile(cfg.Program)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "program loaded",
		"path", cfg.Program,
		"alphabet", string(program.Alphabet),
		"states", program.Table.Len(),
	)
	if _, err := io.WriteString(stdout, turing.Format(program)); err != nil {
		return err
	}

	driver := &turing.Driver{
		Machine:  turing.NewMachine(program),
		Renderer: console.NewRenderer(stdout, cfg.Width, cfg.Clear),
		Logger:   logger,
		Mode:     turing.ModeStep,
		Trace:    cfg.Trace,
		MaxSteps: cfg.MaxSteps,
	}
	if cfg.Run {
		driver.Mode = turing.ModeRun
	} else {
		prompter := console.NewPrompter(stdout)
		defer prompter.Close()
		if err := prompter.Wait(ctx); err != nil {
			return err
		}
		driver.Prompter = prompter
	}

	status, err := driver.RunToEnd(ctx)
	if err != nil {
		return err
	}
	return console.Report(stdout, status)
}
