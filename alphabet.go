package turing

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the ordered set of tape symbols. Symbol 0 is the blank.
type Alphabet string

func (a Alphabet) Empty() byte {
	return a[0]
}

// Index returns the position of sym, or -1. Alphabets are small, so a linear
// scan is used instead of a lookup table.
func (a Alphabet) Index(sym byte) int {
	for v := 0; v < len(a); v++ {
		if a[v] == sym {
			return v
		}
	}
	return -1
}

func (a Alphabet) Validate() error {
	if len(a) == 0 {
		return errors.New("empty alphabet")
	}
	for i := 1; i < len(a); i++ {
		if j := strings.IndexByte(string(a[:i]), a[i]); j >= 0 {
			return fmt.Errorf("duplicate alphabet symbol %q at positions %d and %d", a[i], j, i)
		}
	}
	return nil
}
