// Package sequence provides the default sequence padder: it enforces a
// common width on integer index sequences, mirroring the Keras
// pad_sequences contract (pre-padding and pre-truncation by default).
package sequence

import (
	"fmt"

	"textvec/internal/domain"
)

// Direction selects which end of a sequence padding or truncation
// applies to.
type Direction string

const (
	// Pre pads or truncates at the start of a sequence, so the tail
	// survives truncation.
	Pre Direction = "pre"
	// Post pads or truncates at the end of a sequence.
	Post Direction = "post"
)

// ParseDirection converts a configuration string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Pre, Post:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q (want %q or %q)", s, Pre, Post)
	}
}

// Padder pads or truncates index sequences to a fixed width.
type Padder struct {
	padding    Direction
	truncating Direction
	value      int
}

// NewPadder creates a padder with the given padding and truncation
// directions and fill value.
func NewPadder(padding, truncating Direction, value int) *Padder {
	return &Padder{
		padding:    padding,
		truncating: truncating,
		value:      value,
	}
}

// DefaultPadder returns a padder with the reference defaults:
// pre-padding, pre-truncation, fill value 0.
func DefaultPadder() *Padder {
	return NewPadder(Pre, Pre, 0)
}

// Pad returns a matrix with one row per input sequence, each row
// exactly length columns wide. Sequences longer than length are
// truncated; shorter sequences are filled with the pad value. A
// negative length pads every row to the longest input sequence.
func (p *Padder) Pad(seqs [][]int, length int) domain.IntMatrix {
	if length < 0 {
		length = 0
		for _, seq := range seqs {
			if len(seq) > length {
				length = len(seq)
			}
		}
	}

	m := make(domain.IntMatrix, len(seqs))
	for i, seq := range seqs {
		m[i] = p.padRow(seq, length)
	}
	return m
}

func (p *Padder) padRow(seq []int, length int) []int {
	row := make([]int, length)
	if p.value != 0 {
		for i := range row {
			row[i] = p.value
		}
	}

	if len(seq) >= length {
		if p.truncating == Post {
			copy(row, seq[:length])
		} else {
			copy(row, seq[len(seq)-length:])
		}
		return row
	}

	if p.padding == Post {
		copy(row, seq)
	} else {
		copy(row[length-len(seq):], seq)
	}
	return row
}
