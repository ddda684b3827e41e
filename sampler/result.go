package sampler

// Result is the shared return shape every sampler variant produces after a
// batch of m proposals (spec.md §4.3's common contract).
type Result struct {
	// AddStats[k] and DelStats[k] are the sums of the k-th change
	// statistic over all accepted add and delete moves respectively.
	AddStats []float64
	DelStats []float64

	// Accepted is the number of proposals accepted out of the m run.
	Accepted int
	// Proposed is the number of proposals attempted (at most m: a step
	// whose proposal a move restriction rules out is not counted; IFD
	// additionally reports per-direction counts).
	Proposed int

	// ProposedAdds and ProposedDeletes are IFD-specific: the counts of
	// add- and delete-direction proposals (spec.md §4.3.2's N_add, N_del).
	ProposedAdds    int
	ProposedDeletes int

	// DzArc is IFD-specific: N_del - N_add.
	DzArc float64
}

// AcceptanceRate is Accepted/Proposed, the scalar every sampler variant
// returns alongside Result per spec.md §4.3.
func (r Result) AcceptanceRate() float64 {
	if r.Proposed == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Proposed)
}

func newResult(p int) Result {
	return Result{
		AddStats: make([]float64, p),
		DelStats: make([]float64, p),
	}
}
