package nist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// igamc is the complemented regularized incomplete gamma function Q(a, x),
// the cephes-style building block nearly every test's p-value formula
// bottoms out in. gonum already carries this exact computation (the
// teacher's internal/service.go calls it as GammaIncRegComp), so the
// kernel is a thin, precondition-checked wrapper rather than a
// reimplementation.
func igamc(a, x float64) float64 {
	if x <= 0 {
		return 1.0
	}
	if a <= 0 {
		return 0.0
	}
	return mathext.GammaIncRegComp(a, x)
}

// igam is the (non-complemented) regularized incomplete gamma function
// P(a, x) = 1 - Q(a, x), the lower-tail counterpart of igamc. None of
// the suite's tests calls it; their p-values all use upper tails.
func igam(a, x float64) float64 {
	if x <= 0 || a <= 0 {
		return 0.0
	}
	return mathext.GammaIncReg(a, x)
}

// normal is the standard normal CDF Phi(x) (cephes' ndtr). No pack
// dependency exposes a bare standard-normal CDF more cheaply than cephes
// itself computes it, which is in terms of erfc -- see DESIGN.md.
func normal(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// isNegative reports whether a p-value is bogus on the low side.
func isNegative(x float64) bool {
	return x < 0.0
}

// isGreaterThanOne reports whether a p-value is bogus on the high side.
func isGreaterThanOne(x float64) bool {
	return x > 1.0
}
