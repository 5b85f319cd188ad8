package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity over
// sequences produced by SequenceUpTo:
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("SequenceUpTo satisfies Cassini's Identity", prop.ForAll(
		func(n int) bool {
			seq, err := SequenceUpTo(n + 2)
			if err != nil {
				return false
			}
			left := new(big.Int).Mul(seq[n-1], seq[n+1])
			left.Sub(left, new(big.Int).Mul(seq[n], seq[n]))

			right := big.NewInt(1)
			if n%2 != 0 {
				right.Neg(right)
			}
			return left.Cmp(right) == 0
		},
		gen.IntRange(1, 2000),
	))

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased verifies F(n) = F(n-1) + F(n-2)
// between NthValue calls.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("NthValue satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n int) bool {
			fn, err := NthValue(n)
			if err != nil {
				return false
			}
			fn1, err := NthValue(n - 1)
			if err != nil {
				return false
			}
			fn2, err := NthValue(n - 2)
			if err != nil {
				return false
			}
			return new(big.Int).Add(fn1, fn2).Cmp(fn) == 0
		},
		gen.IntRange(2, 3000),
	))

	properties.TestingRun(t)
}

// TestMembership_PropertyBased checks that IsFibonacci accepts every
// generated term and that SequenceBelow stops exactly at a term bound.
func TestMembership_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("IsFibonacci accepts F(n)", prop.ForAll(
		func(n int) bool {
			f, err := NthValue(n)
			return err == nil && IsFibonacci(f)
		},
		gen.IntRange(0, 1500),
	))

	properties.Property("SequenceBelow(F(k)) ends with F(k)", prop.ForAll(
		func(k int) bool {
			f, err := NthValue(k)
			if err != nil {
				return false
			}
			seq, err := SequenceBelow(f)
			if err != nil {
				return false
			}
			return seq.Last().Cmp(f) == 0
		},
		gen.IntRange(0, 1500),
	))

	properties.Property("SequenceUpTo(n) has length n", prop.ForAll(
		func(n int) bool {
			seq, err := SequenceUpTo(n)
			return err == nil && len(seq) == n
		},
		gen.IntRange(0, 5000),
	))

	properties.TestingRun(t)
}
