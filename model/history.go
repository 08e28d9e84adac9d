package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// Hash returns an MD5 hash of the current lattice state
func (l *Lattice) Hash() string {
	h := md5.New()
	buf := make([]byte, len(l.cells))
	for i, alive := range l.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to history and maintains size
func (l *Lattice) UpdateHistory() {
	l.history = append(l.history, l.Hash())

	if len(l.history) > historySize {
		l.history = l.history[1:]
	}
}

// IsStagnant checks if the lattice is static or cycling with a period of
// up to three generations. Call before UpdateHistory for the current state.
func (l *Lattice) IsStagnant() bool {
	if len(l.history) < 3 {
		return false
	}

	current := l.Hash()
	for back := 1; back <= 3; back++ {
		if l.history[len(l.history)-back] == current {
			return true
		}
	}
	return false
}
