// Package console is the terminal front end of the interpreter: it draws the
// tape window and asks whether to step or run.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/itsabgr/turing"
	"github.com/itsabgr/turing/internal/config"
)

const clearScreen = "\033[H\033[J"

// Renderer draws the tape in lines of Width cells with a marker under the
// head, followed by the current state.
type Renderer struct {
	Out   io.Writer
	Width int
	Clear bool
}

func NewRenderer(out io.Writer, width int, clear config.Clear) *Renderer {
	return &Renderer{
		Out:   out,
		Width: width,
		Clear: ShouldClear(clear, out),
	}
}

// ShouldClear resolves the clear mode against the output.
func ShouldClear(mode config.Clear, out io.Writer) bool {
	switch mode {
	case config.ClearAlways:
		return true
	case config.ClearNever:
		return false
	}
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return true
	}
	return false
}

func (r *Renderer) Render(status turing.Status) error {
	buf := &strings.Builder{}
	if r.Clear {
		buf.WriteString(clearScreen)
	}
	writeTape(buf, status.Cells, status.Head, r.Width)
	buf.WriteString("\n")
	fmt.Fprintf(buf, "Current state: %d", status.State)
	if status.Name != "" {
		fmt.Fprintf(buf, " [%s]", status.Name)
	}
	buf.WriteString("\n")
	_, err := io.WriteString(r.Out, buf.String())
	return err
}

func writeTape(buf *strings.Builder, cells []byte, head, width int) {
	lines := (len(cells) + width - 1) / width
	if lines == 0 {
		lines = 1
	}
	if head >= 0 && head/width >= lines {
		lines = head/width + 1
	}
	for line := 0; line < lines; line++ {
		buf.WriteString("\n")
		for i := line * width; i < (line+1)*width && i < len(cells); i++ {
			buf.WriteByte(cells[i])
			buf.WriteByte(' ')
		}
		buf.WriteString("\n")
		if head >= 0 && head/width == line {
			buf.WriteString(strings.Repeat("  ", head-line*width))
			fmt.Fprintf(buf, "^ [%d]\n", head)
		}
	}
}

// Report prints the final state of a terminated machine.
func Report(out io.Writer, status turing.Status) error {
	buf := &strings.Builder{}
	buf.WriteString("\n\nTuring machine terminated...\n")
	fmt.Fprintf(buf, "\nExit code: %d", status.State)
	if status.Name != "" {
		fmt.Fprintf(buf, " [%s]", status.Name)
	}
	buf.WriteString("\n")
	if status.Fault != nil {
		fmt.Fprintf(buf, "Reason: %v\n", status.Fault)
	}
	_, err := io.WriteString(out, buf.String())
	return err
}
