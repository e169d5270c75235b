package turing

import (
	"fmt"
	"strings"
)

// Format renders a program the way it is shown before a run: the alphabet,
// every state with its transition row, then the initial tape.
func Format(program *Program) string {
	res := &strings.Builder{}
	format(program.Alphabet, res, program)
	return res.String()
}

func format(alphabet Alphabet, res *strings.Builder, node any) {
	switch t := node.(type) {
	case string:
		res.WriteString(t)
	case *Program:
		format(alphabet, res, "Alphabet: ")
		format(alphabet, res, string(t.Alphabet))
		format(alphabet, res, "\n")
		format(alphabet, res, t.Table)
		format(alphabet, res, "\n")
		format(alphabet, res, t.Tape)
		format(alphabet, res, "\n")
	case *Table:
		for id := StateID(0); int(id) < t.Len(); id++ {
			format(alphabet, res, fmt.Sprintf("%2d: %s\n", id, t.State(id).Name))
			if !id.Terminal() {
				format(alphabet, res, t.State(id))
			}
		}
	case *State:
		format(alphabet, res, "ALPHAB: ")
		for i := 0; i < len(alphabet); i++ {
			format(alphabet, res, fmt.Sprintf("%c ", alphabet[i]))
		}
		format(alphabet, res, "\nOUTPUT: ")
		for _, tr := range t.Row {
			format(alphabet, res, fmt.Sprintf("%c ", tr.Output))
		}
		format(alphabet, res, "\n  NEXT: ")
		for _, tr := range t.Row {
			format(alphabet, res, fmt.Sprintf("%d ", tr.Next))
		}
		format(alphabet, res, "\n  MOVE: ")
		for _, tr := range t.Row {
			format(alphabet, res, fmt.Sprintf("%d ", tr.Move))
		}
		format(alphabet, res, "\n")
	case *Tape:
		format(alphabet, res, t.String())
	default:
		panic(fmt.Errorf("unknown node %T", node))
	}
}
