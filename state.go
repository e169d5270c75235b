package turing

import (
	"fmt"
	"strconv"
)

// StateID indexes the state table. The first three ids are the absorbing
// terminal states; the file format refers to them by the same numbers.
type StateID int

const (
	Accept StateID = iota
	Decline
	Error
)

// Start is the first active state and the one every run begins in.
const Start StateID = Error + 1

func (id StateID) Terminal() bool {
	return id <= Error
}

func (id StateID) String() string {
	switch id {
	case Accept:
		return "ACCEPT"
	case Decline:
		return "DECLINE"
	case Error:
		return "ERROR"
	}
	return strconv.Itoa(int(id))
}

// Transition is what a state does on one alphabet symbol.
type Transition struct {
	Output byte
	Move   int
	Next   StateID
}

// State is a table entry. Terminal states have a nil Row. An empty Name means
// the state is anonymous.
type State struct {
	Name string
	Row  []Transition
}

// Table is the append-only state table.
type Table struct {
	states []State
	width  int
}

// NewTable returns a table holding only the three terminal states, for an
// alphabet of width symbols.
func NewTable(width int) *Table {
	states := make([]State, 3, 4)
	states[Accept] = State{Name: Accept.String()}
	states[Decline] = State{Name: Decline.String()}
	states[Error] = State{Name: Error.String()}
	return &Table{
		states: states,
		width:  width,
	}
}

func (t *Table) Len() int { return len(t.states) }

func (t *Table) Append(row []Transition, name string) (StateID, error) {
	if len(row) != t.width {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrRowLength, len(row), t.width)
	}
	if len(t.states) == cap(t.states) {
		states := make([]State, len(t.states), cap(t.states)*2)
		copy(states, t.states)
		t.states = states
	}
	id := StateID(len(t.states))
	t.states = append(t.states, State{
		Name: name,
		Row:  row,
	})
	return id, nil
}

func (t *Table) Valid(id StateID) bool {
	return id >= 0 && int(id) < len(t.states)
}

func (t *Table) State(id StateID) *State {
	return &t.states[id]
}
