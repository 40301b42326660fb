package port

import "textvec/internal/domain"

// SequencePadder enforces a common width on index sequences.
type SequencePadder interface {
	// Pad returns a matrix with one row per input sequence, each row
	// exactly length columns wide. A negative length pads every row to
	// the longest sequence instead.
	Pad(seqs [][]int, length int) domain.IntMatrix
}
