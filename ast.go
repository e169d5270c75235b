package turing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// IntRow is a line of space separated integers: next states or moves.
type IntRow struct {
	Values []string `parser:"@Int*"`
}

// SymbolRow is a line of space separated output symbols. Only the first byte
// of each token is used.
type SymbolRow struct {
	Symbols []string `parser:"@Symbol*"`
}

var (
	intParser = participle.MustBuild[IntRow](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "Int", Pattern: `[-+]?\d+`},
			{Name: "Whitespace", Pattern: `[ \t]+`},
		})),
		participle.Elide("Whitespace"),
	)
	symbolParser = participle.MustBuild[SymbolRow](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "Symbol", Pattern: `[^ ]+`},
			{Name: "Whitespace", Pattern: ` +`},
		})),
		participle.Elide("Whitespace"),
	)
)

// Program is a loaded machine description, ready to run.
type Program struct {
	Alphabet Alphabet
	Tape     *Tape
	Table    *Table
}

func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open program: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a program description: the alphabet line, the tape line, then
// one four line group per state (name, next states, moves, outputs). States
// are numbered from Start in file order. A trailing incomplete group is
// ignored.
func Load(r io.Reader) (*Program, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), 64<<20)

	var (
		program  Program
		group    [4]string
		nextLine []int
		lineNo   int
	)
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		switch lineNo {
		case 1:
			program.Alphabet = Alphabet(line)
			if err := program.Alphabet.Validate(); err != nil {
				return nil, &LoadError{Line: lineNo, Err: err}
			}
			program.Table = NewTable(len(program.Alphabet))
			continue
		case 2:
			program.Tape = NewTape(line, program.Alphabet.Empty())
			continue
		}
		pos := (lineNo - 3) % 4
		group[pos] = line
		if pos < 3 {
			continue
		}
		row, err := parseRow(len(program.Alphabet), group[1], group[2], group[3], lineNo-2)
		if err != nil {
			return nil, err
		}
		if _, err := program.Table.Append(row, group[0]); err != nil {
			return nil, &LoadError{Line: lineNo, Err: err}
		}
		nextLine = append(nextLine, lineNo-2)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	if lineNo == 0 {
		return nil, &LoadError{Err: errors.New("empty alphabet")}
	}
	if program.Tape == nil {
		program.Tape = NewTape("", program.Alphabet.Empty())
	}
	if program.Table.Len() <= int(Start) {
		return nil, &LoadError{Err: errors.New("program defines no states")}
	}
	for id := Start; int(id) < program.Table.Len(); id++ {
		for v, tr := range program.Table.State(id).Row {
			if !program.Table.Valid(tr.Next) {
				return nil, &LoadError{
					Line: nextLine[id-Start],
					Err:  fmt.Errorf("state %d: next state %d for symbol %q does not exist", id, tr.Next, program.Alphabet[v]),
				}
			}
		}
	}
	return &program, nil
}

// parseRow builds a transition row of the given width. Short lines are padded
// with ERROR, a zero move and a space; extra tokens are ignored.
func parseRow(width int, nextText, moveText, outputText string, firstLine int) ([]Transition, error) {
	next, err := parseInts(nextText, firstLine)
	if err != nil {
		return nil, err
	}
	move, err := parseInts(moveText, firstLine+1)
	if err != nil {
		return nil, err
	}
	output, err := symbolParser.ParseString("", outputText)
	if err != nil {
		return nil, &LoadError{Line: firstLine + 2, Err: err}
	}
	row := make([]Transition, width)
	for i := range row {
		row[i] = Transition{
			Output: ' ',
			Move:   0,
			Next:   Error,
		}
		if i < len(next) {
			row[i].Next = StateID(next[i])
		}
		if i < len(move) {
			row[i].Move = move[i]
		}
		if i < len(output.Symbols) {
			row[i].Output = output.Symbols[i][0]
		}
	}
	return row, nil
}

func parseInts(text string, line int) ([]int, error) {
	row, err := intParser.ParseString("", text)
	if err != nil {
		return nil, &LoadError{Line: line, Err: err}
	}
	values := make([]int, 0, len(row.Values))
	for _, s := range row.Values {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		values = append(values, n)
	}
	return values, nil
}
