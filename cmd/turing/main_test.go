package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsabgr/turing"
	"github.com/itsabgr/turing/internal/config"
)

func writeProgram(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.tm")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write program: %v", err)
	}
	return path
}

func runConfig(path string) config.Config {
	return config.Config{
		Program:  path,
		Run:      true,
		Width:    100,
		Clear:    config.ClearNever,
		LogLevel: slog.LevelWarn,
	}
}

func TestRunToCompletion(t *testing.T) {
	path := writeProgram(t, "_01\n1011\nright\n4 3 3\n-1 1 1\n_ 0 1\ncarry\n0 0 4\n0 0 -1\n1 1 0\n")
	out := &bytes.Buffer{}

	if err := run(context.Background(), runConfig(path), out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Alphabet: _01\n",
		" 4: carry\n",
		"1 1 0 0 _ _ _ _ \n  ^ [1]\n",
		"Current state: 0 [ACCEPT]\n",
		"Exit code: 0 [ACCEPT]\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRunMachineError(t *testing.T) {
	path := writeProgram(t, "01\n2\n\n3 3\n1 1\n1 1\n")
	out := &bytes.Buffer{}

	if err := run(context.Background(), runConfig(path), out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Exit code: 2 [ERROR]\nReason: symbol not in alphabet") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunMissingProgram(t *testing.T) {
	cfg := runConfig(filepath.Join(t.TempDir(), "missing.tm"))
	err := run(context.Background(), cfg, io.Discard, io.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

func TestRunStepLimit(t *testing.T) {
	path := writeProgram(t, "01\n0\nspin\n3 3\n0 0\n0 1\n")
	cfg := runConfig(path)
	cfg.MaxSteps = 10

	err := run(context.Background(), cfg, io.Discard, io.Discard)
	if !errors.Is(err, turing.ErrStepLimit) {
		t.Fatalf("expected step limit, got %v", err)
	}
}

// main exits the process, so it runs in a subprocess.
func TestMainUsage(t *testing.T) {
	if os.Getenv("TEST_MAIN_SUBPROCESS") == "1" {
		os.Args = []string{"turing"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMainUsage$")
	cmd.Env = append(os.Environ(), "TEST_MAIN_SUBPROCESS=1")
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d", exitErr.ExitCode())
	}
	for _, want := range []string{"usage: turing [flags] <program>", "-max-steps"} {
		if !strings.Contains(stderr.String(), want) {
			t.Fatalf("expected stderr to contain %q, got %q", want, stderr.String())
		}
	}
}
