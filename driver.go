package turing

import (
	"context"
	"fmt"
	"log/slog"
)

// Mode is how the driver continues after a step.
type Mode int

const (
	// ModeStep pauses for the prompter before every step.
	ModeStep Mode = iota
	// ModeRun runs the remaining steps without pausing.
	ModeRun
)

func (m Mode) String() string {
	switch m {
	case ModeStep:
		return "step"
	case ModeRun:
		return "run"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Renderer shows the machine between steps.
type Renderer interface {
	Render(Status) error
}

// Prompter asks the user how to continue. It blocks until an answer is given.
type Prompter interface {
	Prompt(ctx context.Context) (Mode, error)
}

// Driver runs a Machine until it reaches a terminal state.
type Driver struct {
	Machine  *Machine
	Renderer Renderer
	Prompter Prompter
	Logger   *slog.Logger
	// Mode is the starting mode. Once ModeRun is chosen the driver never
	// prompts again.
	Mode Mode
	// Trace renders every step in ModeRun too, not only the final state.
	Trace bool
	// MaxSteps stops the run with ErrStepLimit. Zero means no limit.
	MaxSteps int
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// Step applies exactly one transition and reports whether the machine is
// still running.
func (d *Driver) Step(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m := d.Machine
	if m.Halted() {
		return false, ErrHalted
	}
	if d.MaxSteps > 0 && m.steps >= d.MaxSteps {
		d.logger().WarnContext(ctx, "step limit reached", "steps", m.steps, "state", m.state)
		return false, fmt.Errorf("%w: %d steps", ErrStepLimit, d.MaxSteps)
	}
	from, head := m.state, m.head
	running := m.Step()
	d.logger().DebugContext(ctx, "step",
		"n", m.steps,
		"from", from,
		"to", m.state,
		"head", head,
		"move", m.head-head,
	)
	return running, nil
}

// RunToEnd steps until the machine halts. The machine is rendered before every
// step while in ModeStep or when tracing, and always once at the end.
func (d *Driver) RunToEnd(ctx context.Context) (Status, error) {
	m := d.Machine
	d.logger().InfoContext(ctx, "run started", "state", m.state, "mode", d.Mode, "tape", m.tape.Len())
	for !m.Halted() {
		if d.Mode == ModeStep || d.Trace {
			if err := d.render(); err != nil {
				return m.Status(), err
			}
		}
		if d.Mode == ModeStep && d.Prompter != nil {
			mode, err := d.Prompter.Prompt(ctx)
			if err != nil {
				return m.Status(), fmt.Errorf("prompt: %w", err)
			}
			d.Mode = mode
		}
		if _, err := d.Step(ctx); err != nil {
			return m.Status(), err
		}
	}
	if err := d.render(); err != nil {
		return m.Status(), err
	}
	status := m.Status()
	attrs := []any{"state", status.State, "name", status.Name, "steps", status.Steps}
	if status.Fault != nil {
		attrs = append(attrs, "fault", status.Fault)
	}
	d.logger().InfoContext(ctx, "machine terminated", attrs...)
	return status, nil
}

func (d *Driver) render() error {
	if d.Renderer == nil {
		return nil
	}
	if err := d.Renderer.Render(d.Machine.Status()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
