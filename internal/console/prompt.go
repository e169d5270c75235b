package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/itsabgr/turing"
)

const (
	startText = "\nPress Enter to run program.\n"
	stepText  = "\nPress Enter to step forward. Or type 'r' to run whole program.\n"
	prompt    = "> "
)

// Prompter reads step/run answers from the terminal.
type Prompter struct {
	Out  io.Writer
	line *liner.State
}

func NewPrompter(out io.Writer) *Prompter {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &Prompter{
		Out:  out,
		line: ln,
	}
}

func (p *Prompter) Close() error {
	return p.line.Close()
}

// Wait blocks until Enter is pressed. End of input counts as Enter.
func (p *Prompter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprint(p.Out, startText)
	_, err := p.line.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Prompt asks whether to take one step or run the rest of the program. End
// of input selects run mode.
func (p *Prompter) Prompt(ctx context.Context) (turing.Mode, error) {
	if err := ctx.Err(); err != nil {
		return turing.ModeStep, err
	}
	fmt.Fprint(p.Out, stepText)
	answer, err := p.line.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		return turing.ModeRun, nil
	}
	if err != nil {
		return turing.ModeStep, err
	}
	return ParseMode(answer), nil
}

// ParseMode maps an answer to a mode: anything starting with "r" runs.
func ParseMode(answer string) turing.Mode {
	answer = strings.TrimSpace(answer)
	if strings.HasPrefix(answer, "r") || strings.HasPrefix(answer, "R") {
		return turing.ModeRun
	}
	return turing.ModeStep
}
