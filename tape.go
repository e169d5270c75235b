package turing

// Tape is the machine memory. Cells in [Len, Cap) always hold the blank symbol.
type Tape struct {
	cells []byte
	len   int
	empty byte
	grows int
}

// NewTape builds a tape from one line of text. Line terminators are skipped.
// Capacity starts at one cell and doubles as the text is copied in.
func NewTape(text string, empty byte) *Tape {
	t := &Tape{
		cells: []byte{empty},
		empty: empty,
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' || c == '\r' {
			continue
		}
		if t.len >= len(t.cells) {
			t.Grow()
		}
		t.cells[t.len] = c
		t.len++
	}
	return t
}

func (t *Tape) Len() int { return t.len }

func (t *Tape) Cap() int { return len(t.cells) }

// Cells returns a copy of the whole allocated tape.
func (t *Tape) Cells() []byte {
	return append([]byte(nil), t.cells...)
}

// String returns the written part of the tape, cells [0, Len).
func (t *Tape) String() string {
	return string(t.cells[:t.len])
}

// Grow doubles the capacity (a zero tape becomes one cell). Existing cells are
// kept; every new cell is blank.
func (t *Tape) Grow() {
	size := len(t.cells) * 2
	if size == 0 {
		size = 1
	}
	cells := make([]byte, size)
	copy(cells, t.cells[:t.len])
	for i := t.len; i < size; i++ {
		cells[i] = t.empty
	}
	t.cells = cells
	t.grows++
}

func (t *Tape) reserve(index int) {
	for index >= len(t.cells) {
		t.Grow()
	}
}

func (t *Tape) Read(index int) (byte, error) {
	if index < 0 {
		return 0, ErrOutOfBounds
	}
	t.reserve(index)
	return t.cells[index], nil
}

func (t *Tape) Write(index int, sym byte) error {
	if index < 0 {
		return ErrOutOfBounds
	}
	t.reserve(index)
	t.cells[index] = sym
	if index >= t.len {
		t.len = index + 1
	}
	return nil
}
