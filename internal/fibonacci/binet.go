package fibonacci

import (
	"math"
	"math/big"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
)

// BinetComparison pairs the iterative F(n) with the rounded closed form.
type BinetComparison struct {
	N         int
	Iterative *big.Int
	Binet     *big.Int
	Match     bool
}

// BinetValue evaluates round((φⁿ − ψⁿ)/√5) in float64. The result is exact
// up to BinetExactLimit and drifts afterwards; indices whose φⁿ overflows
// float64 are rejected.
func BinetValue(n int) (*big.Int, error) {
	if n < 0 {
		return nil, apperrors.NewInvalidArgument("n", "must be non-negative, got %d", n)
	}
	v := math.Round((math.Pow(GoldenRatio, float64(n)) - math.Pow(PhiConjugate, float64(n))) / Sqrt5)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, apperrors.NewInvalidArgument("n", "%d overflows float64 in Binet's formula", n)
	}
	out, _ := big.NewFloat(v).Int(nil)
	return out, nil
}

// CompareBinet computes F(n) both iteratively and with Binet's formula.
func CompareBinet(n int) (BinetComparison, error) {
	iter, err := NthValue(n)
	if err != nil {
		return BinetComparison{}, err
	}
	binet, err := BinetValue(n)
	if err != nil {
		return BinetComparison{}, err
	}
	return BinetComparison{
		N:         n,
		Iterative: iter,
		Binet:     binet,
		Match:     iter.Cmp(binet) == 0,
	}, nil
}
