package fibonacci

import (
	"errors"
	"math"
	"math/big"
)

// ErrInsufficientInput is returned by RatioAnalysis when fewer than two
// terms are requested.
var ErrInsufficientInput = errors.New("need at least 2 numbers for ratio analysis")

// AnalysisResult holds the consecutive-term ratios of a generated sequence
// and how close the last one lands to the golden ratio.
type AnalysisResult struct {
	// Sequence is the analysed run, F(0) through F(n-1).
	Sequence Sequence
	// Ratios holds F(i)/F(i-1) for every i whose denominator is non-zero.
	Ratios []float64
	// GoldenRatio is φ, reported for comparison.
	GoldenRatio float64
	// FinalRatio is the last entry of Ratios, or NaN when there is none.
	FinalRatio float64
	// ConvergenceError is |FinalRatio − φ|, or NaN when there is no ratio.
	ConvergenceError float64
}

// HasRatios reports whether at least one ratio could be computed.
func (r AnalysisResult) HasRatios() bool {
	return len(r.Ratios) > 0
}

// RatioAnalysis generates the first n terms and analyses F(i)/F(i-1).
// Terms with a zero denominator are skipped rather than failing, so for a
// sequence starting at 0 exactly one ratio is dropped.
func RatioAnalysis(n int) (AnalysisResult, error) {
	if n < 2 {
		return AnalysisResult{}, ErrInsufficientInput
	}

	seq, err := SequenceUpTo(n)
	if err != nil {
		return AnalysisResult{}, err
	}

	ratios := make([]float64, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		if seq[i-1].Sign() == 0 {
			continue
		}
		ratios = append(ratios, ratio(seq[i], seq[i-1]))
	}

	res := AnalysisResult{
		Sequence:         seq,
		Ratios:           ratios,
		GoldenRatio:      goldenRatio,
		FinalRatio:       math.NaN(),
		ConvergenceError: math.NaN(),
	}
	if len(ratios) > 0 {
		res.FinalRatio = ratios[len(ratios)-1]
		res.ConvergenceError = math.Abs(res.FinalRatio - goldenRatio)
	}
	return res, nil
}

// ratio divides in big.Float so that terms beyond float64 range still give
// a finite quotient.
func ratio(num, den *big.Int) float64 {
	q := new(big.Float).Quo(new(big.Float).SetInt(num), new(big.Float).SetInt(den))
	f, _ := q.Float64()
	return f
}
