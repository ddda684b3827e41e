package estimator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// varianceWindow is the rolling-window length used for the compC
// coefficient-of-variation clamp: large enough to smooth sampler noise,
// small enough to react within one Algorithm EE outer step.
const varianceWindow = 20

// thetaHistory tracks each parameter's recent values so Algorithm EE can
// clamp a parameter whose coefficient of variation (sd/|mean|) exceeds
// compC (spec.md §4.4 step 3).
type thetaHistory struct {
	window [][]float64 // ring buffer of theta snapshots
	next   int
	filled bool
}

func newThetaHistory(p int) *thetaHistory {
	return &thetaHistory{window: make([][]float64, 0, varianceWindow)}
}

func (h *thetaHistory) push(theta []float64) {
	snap := append([]float64(nil), theta...)
	if len(h.window) < varianceWindow {
		h.window = append(h.window, snap)
		return
	}
	h.window[h.next] = snap
	h.next = (h.next + 1) % varianceWindow
	h.filled = true
}

// clampIfUnstable recomputes each parameter's running mean/sd over the
// window via gonum's stat.MeanVariance and, if the coefficient of
// variation exceeds compC, clamps that parameter to the window's mean.
func (h *thetaHistory) clampIfUnstable(theta []float64, compC float64) {
	if compC <= 0 || len(h.window) < 2 {
		return
	}
	p := len(theta)
	col := make([]float64, len(h.window))
	for k := 0; k < p; k++ {
		for s, snap := range h.window {
			col[s] = snap[k]
		}
		mean, variance := stat.MeanVariance(col, nil)
		sd := math.Sqrt(variance)
		if mean == 0 {
			continue
		}
		if sd/math.Abs(mean) > compC {
			theta[k] = mean
		}
	}
}
