package statistic

import "math"

// altWeight is the alternating-statistic decay term spec.md §4.2 uses for
// AltInStars/AltOutStars and the endpoint-degree contribution of several
// other alternating statistics: λ·(1 - (1-1/λ)^d).
func altWeight(lambda float64, d int) float64 {
	if lambda <= 1 {
		return float64(d)
	}
	return lambda * (1 - math.Pow(1-1/lambda, float64(d)))
}

// altTerm is the per-two-path decay term (1-1/λ)^k used inside the
// AltKTriangles family's summations before the closing λ·(1-(1-1/λ)^m) term
// is added for the newly-closed two-path itself.
func altTerm(lambda float64, k int) float64 {
	if lambda <= 1 {
		return 0
	}
	return math.Pow(1-1/lambda, float64(k))
}

// pow0 is Bomiriya (2023)'s convention for the homophily exponentiation:
// 0^0 is defined as 0 (not 1), so a pair of nodes with zero weight on an
// attribute contributes nothing rather than a spurious unit term.
func pow0(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return math.Pow(x, y)
}

// signum returns -1, 0, or 1.
func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// deleteSign flips an add-convention delta when the caller actually wants
// the removal direction but the statistic was evaluated on the
// already-present dyad (used by the handful of statistics, like
// MismatchingTransitiveTies, that must inspect the dyad in its "present"
// state regardless of which direction the caller ultimately wants).
func deleteSign(isDelete bool) float64 {
	if isDelete {
		return -1
	}
	return 1
}
