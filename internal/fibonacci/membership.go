package fibonacci

import (
	"math"
	"math/big"
)

var (
	bigFour = big.NewInt(4)
	bigFive = big.NewInt(5)
)

// IsFibonacci reports whether num is a Fibonacci number, using the identity
// that n is one iff 5n²+4 or 5n²−4 is a perfect square. Nil and negative
// inputs are not Fibonacci numbers; this function never fails.
func IsFibonacci(num *big.Int) bool {
	if num == nil || num.Sign() < 0 {
		return false
	}

	t := new(big.Int).Mul(num, num)
	t.Mul(t, bigFive)
	if isPerfectSquare(new(big.Int).Add(t, bigFour)) {
		return true
	}
	return isPerfectSquare(t.Sub(t, bigFour))
}

// IsFibonacciFloat is IsFibonacci for a float64 input. Values that are not
// finite, non-negative integers report false.
func IsFibonacciFloat(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x != math.Trunc(x) {
		return false
	}
	n, _ := big.NewFloat(x).Int(nil)
	return IsFibonacci(n)
}

// isPerfectSquare truncates the integer square root of x and squares it back.
func isPerfectSquare(x *big.Int) bool {
	if x.Sign() < 0 {
		return false
	}
	r := new(big.Int).Sqrt(x)
	return r.Mul(r, r).Cmp(x) == 0
}
