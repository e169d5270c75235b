package turing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPrompter struct {
	answers []Mode
	calls   int
	err     error
}

func (p *scriptedPrompter) Prompt(context.Context) (Mode, error) {
	p.calls++
	if p.err != nil {
		return ModeStep, p.err
	}
	if len(p.answers) == 0 {
		return ModeStep, nil
	}
	mode := p.answers[0]
	p.answers = p.answers[1:]
	return mode, nil
}

type recordingRenderer struct {
	statuses []Status
}

func (r *recordingRenderer) Render(status Status) error {
	r.statuses = append(r.statuses, status)
	return nil
}

func TestDriverStepMode(t *testing.T) {
	renderer := &recordingRenderer{}
	prompter := &scriptedPrompter{answers: []Mode{ModeStep, ModeStep, ModeRun}}
	d := &Driver{
		Machine:  NewMachine(mustLoad(t, increment)),
		Renderer: renderer,
		Prompter: prompter,
	}

	status, err := d.RunToEnd(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Accept, status.State)
	assert.Equal(t, 8, status.Steps)
	assert.Equal(t, 3, prompter.calls)
	require.Len(t, renderer.statuses, 4)
	for i, s := range renderer.statuses[:3] {
		assert.Equal(t, i, s.Steps)
		assert.Equal(t, i, s.Head)
	}
	assert.Equal(t, status, renderer.statuses[3])
}

func TestDriverStepModeEveryStep(t *testing.T) {
	renderer := &recordingRenderer{}
	prompter := &scriptedPrompter{}
	d := &Driver{
		Machine:  NewMachine(mustLoad(t, increment)),
		Renderer: renderer,
		Prompter: prompter,
	}

	_, err := d.RunToEnd(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, prompter.calls)
	assert.Len(t, renderer.statuses, 9)
}

func TestDriverRunMode(t *testing.T) {
	renderer := &recordingRenderer{}
	prompter := &scriptedPrompter{}
	d := &Driver{
		Machine:  NewMachine(mustLoad(t, increment)),
		Renderer: renderer,
		Prompter: prompter,
		Mode:     ModeRun,
	}

	status, err := d.RunToEnd(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Accept, status.State)
	assert.Equal(t, 0, prompter.calls)
	assert.Len(t, renderer.statuses, 1)
}

func TestDriverTrace(t *testing.T) {
	renderer := &recordingRenderer{}
	d := &Driver{
		Machine:  NewMachine(mustLoad(t, increment)),
		Renderer: renderer,
		Mode:     ModeRun,
		Trace:    true,
	}

	_, err := d.RunToEnd(context.Background())
	require.NoError(t, err)
	assert.Len(t, renderer.statuses, 9)
}

func TestDriverMaxSteps(t *testing.T) {
	loop := "01\n0\nspin\n3 3\n0 0\n0 1\n"
	d := &Driver{
		Machine:  NewMachine(mustLoad(t, loop)),
		Mode:     ModeRun,
		MaxSteps: 25,
	}

	status, err := d.RunToEnd(context.Background())
	assert.ErrorIs(t, err, ErrStepLimit)
	assert.Equal(t, 25, status.Steps)
	assert.Equal(t, Start, status.State)
}

func TestDriverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &Driver{
		Machine: NewMachine(mustLoad(t, increment)),
		Mode:    ModeRun,
	}

	_, err := d.RunToEnd(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Start, d.Machine.State())
}

func TestDriverPromptError(t *testing.T) {
	boom := errors.New("boom")
	d := &Driver{
		Machine:  NewMachine(mustLoad(t, increment)),
		Prompter: &scriptedPrompter{err: boom},
	}

	_, err := d.RunToEnd(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, d.Machine.Status().Steps)
}

func TestDriverStep(t *testing.T) {
	d := &Driver{
		Machine: NewMachine(mustLoad(t, "01\n011\n\n0 1\n0 0\n0 1\n")),
	}
	ctx := context.Background()

	running, err := d.Step(ctx)
	require.NoError(t, err)
	assert.False(t, running)
	assert.Equal(t, Accept, d.Machine.State())

	_, err = d.Step(ctx)
	assert.ErrorIs(t, err, ErrHalted)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "step", ModeStep.String())
	assert.Equal(t, "run", ModeRun.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
