package fibonacci

import (
	"math"
	"math/big"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
)

// Sequence is an ordered run of Fibonacci terms starting at F(0) = 0.
// Each element is a distinct *big.Int owned by the caller.
type Sequence []*big.Int

// Last returns the final term, or nil for an empty sequence.
func (s Sequence) Last() *big.Int {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Strings renders every term in base 10.
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.String()
	}
	return out
}

// SequenceUpTo returns the first n Fibonacci numbers, F(0) through F(n-1).
// It returns an empty sequence for n = 0 and an invalid-argument error for
// negative n. Only the last two terms are carried between iterations.
//
// Example:
//
//	SequenceUpTo(5) // [0 1 1 2 3]
func SequenceUpTo(n int) (Sequence, error) {
	if n < 0 {
		return nil, apperrors.NewInvalidArgument("n", "must be non-negative, got %d", n)
	}

	seq := make(Sequence, 0, n)
	a, b := big.NewInt(0), big.NewInt(1)
	for len(seq) < n {
		seq = append(seq, a)
		a, b = b, new(big.Int).Add(a, b)
	}
	return seq, nil
}

// SequenceBelow returns every Fibonacci number not exceeding max, starting
// from 0. Because F(1) = F(2) = 1, the value 1 appears twice whenever
// max >= 1. A nil or negative bound is an invalid argument.
func SequenceBelow(max *big.Int) (Sequence, error) {
	if max == nil {
		return nil, apperrors.NewInvalidArgument("max", "must be a number")
	}
	if max.Sign() < 0 {
		return nil, apperrors.NewInvalidArgument("max", "must be non-negative, got %s", max)
	}

	var seq Sequence
	a, b := big.NewInt(0), big.NewInt(1)
	for a.Cmp(max) <= 0 {
		seq = append(seq, a)
		a, b = b, new(big.Int).Add(a, b)
	}
	return seq, nil
}

// SequenceBelowFloat is SequenceBelow for a fractional bound. The bound is
// floored before generation; NaN, infinities and negative values are
// rejected.
func SequenceBelowFloat(max float64) (Sequence, error) {
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, apperrors.NewInvalidArgument("max", "must be a finite number, got %v", max)
	}
	if max < 0 {
		return nil, apperrors.NewInvalidArgument("max", "must be non-negative, got %v", max)
	}
	bound, _ := big.NewFloat(math.Floor(max)).Int(nil)
	return SequenceBelow(bound)
}
