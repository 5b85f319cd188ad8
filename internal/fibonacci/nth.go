package fibonacci

import (
	"math/big"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
)

// NthValue returns F(n) (0-indexed) without materialising the sequence.
// It runs the recurrence n times over two accumulators, so auxiliary space
// stays constant in the number of terms.
func NthValue(n int) (*big.Int, error) {
	if n < 0 {
		return nil, apperrors.NewInvalidArgument("n", "must be non-negative, got %d", n)
	}

	a, b := new(big.Int), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}
