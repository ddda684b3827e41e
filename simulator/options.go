package simulator

// Config bundles the simulation-set configuration keywords spec.md §6
// lists, plus the sampler-kernel selection shared with the estimator.
type Config struct {
	NumNodes   int
	SampleSize int
	Interval   int
	Burnin     int

	ForbidReciprocity bool
	UseIFDSampler     bool
	UseTNTSampler     bool
	IFDK              float64
	NumArcs           int
	CERGM             bool

	// UseRandomSparseStart and RandomSparseP select a Bernoulli(p)
	// density-targeted starting graph instead of the fixed-arc-count
	// Erdős-Rényi draw UseIFDSampler/NumArcs produces.
	UseRandomSparseStart bool
	RandomSparseP        float64

	StatsFile              string
	OutputSimulatedNetwork bool
	SimNetFilePrefix       string

	// ParamNames is the header row for the stats file, mirroring
	// estimator.Config.ParamNames.
	ParamNames []string
}
