package fibonacci

import "math"

// ─────────────────────────────────────────────────────────────────────────────
// Mathematical Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// GoldenRatio is φ = (1+√5)/2, the limit of F(n+1)/F(n).
	GoldenRatio = 1.61803398874989484820458683436563811772030917980576

	// PhiConjugate is ψ = (1−√5)/2, the second root of x² = x + 1.
	// Its powers vanish, which is why Binet's formula rounds correctly.
	PhiConjugate = -0.61803398874989484820458683436563811772030917980576

	// Sqrt5 is √5, the denominator of Binet's formula.
	Sqrt5 = 2.23606797749978969640917366873127623544061835961153
)

// ─────────────────────────────────────────────────────────────────────────────
// Evaluation Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxUint64Index is the largest n for which F(n) fits in a uint64.
	// Terms past this index are the reason the toolkit works on *big.Int.
	MaxUint64Index = 93

	// BinetExactLimit is the largest n for which the float64 evaluation of
	// Binet's formula still rounds to the exact integer F(n).
	BinetExactLimit = 70
)

// goldenRatio is GoldenRatio as a float64, kept as a variable so analysis
// results report the same value the comparisons use.
var goldenRatio = (1 + math.Sqrt(5)) / 2
