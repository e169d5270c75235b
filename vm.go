package turing

import (
	"fmt"
)

// Status is a read-only view of the machine between steps.
type Status struct {
	Cells []byte
	Head  int
	State StateID
	Name  string
	Steps int
	Fault error
}

// Machine owns one program's tape, state table and head position.
type Machine struct {
	alphabet Alphabet
	table    *Table
	tape     *Tape
	head     int
	state    StateID
	steps    int
	fault    error
}

func NewMachine(program *Program) *Machine {
	return &Machine{
		alphabet: program.Alphabet,
		table:    program.Table,
		tape:     program.Tape,
		state:    Start,
	}
}

func (m *Machine) Tape() *Tape { return m.tape }

func (m *Machine) Head() int { return m.head }

func (m *Machine) State() StateID { return m.state }

func (m *Machine) Halted() bool { return m.state.Terminal() }

// Fault is the reason the machine entered ERROR, if it did so on its own.
func (m *Machine) Fault() error { return m.fault }

func (m *Machine) Status() Status {
	return Status{
		Cells: m.tape.Cells(),
		Head:  m.head,
		State: m.state,
		Name:  m.table.State(m.state).Name,
		Steps: m.steps,
		Fault: m.fault,
	}
}

func (m *Machine) halt(err error) bool {
	m.state = Error
	m.fault = err
	return false
}

// Step applies one transition and reports whether the machine is still in an
// active state. Stepping a halted machine does nothing.
//
// Moves are meant to be -1, 0 or +1. Longer moves work, but the head may then
// rest past the end of the tape until the next step grows it.
func (m *Machine) Step() bool {
	if m.Halted() {
		return false
	}
	m.steps++
	if m.head < 0 {
		return m.halt(fmt.Errorf("%w: head at %d", ErrOutOfBounds, m.head))
	}
	for m.head >= m.tape.Cap() {
		m.tape.Grow()
	}
	sym, err := m.tape.Read(m.head)
	if err != nil {
		return m.halt(err)
	}
	v := m.alphabet.Index(sym)
	if v < 0 {
		return m.halt(fmt.Errorf("%w: %q at cell %d", ErrUnknownSymbol, sym, m.head))
	}
	tr := m.table.State(m.state).Row[v]

	// grow ahead so the cell after the head is always readable
	if m.head+1 >= m.tape.Cap() {
		m.tape.Grow()
	}
	if m.head+tr.Move < 0 {
		return m.halt(fmt.Errorf("%w: move %d from cell %d", ErrOutOfBounds, tr.Move, m.head))
	}
	if !m.table.Valid(tr.Next) {
		return m.halt(fmt.Errorf("%w: %d", ErrUnknownState, tr.Next))
	}
	if err := m.tape.Write(m.head, tr.Output); err != nil {
		return m.halt(err)
	}
	m.head += tr.Move
	m.state = tr.Next
	return !m.state.Terminal()
}
