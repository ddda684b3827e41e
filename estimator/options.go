package estimator

// Config bundles the estimation-set configuration keywords spec.md §6
// lists: iteration counts, step sizes, the Borisenko update toggle, the
// variance-clamp threshold, and the sampler kernel selection.
type Config struct {
	SSteps         int
	SamplerSteps   int
	EESteps        int
	EEInnerSteps   int
	ACA_S          float64
	ACA_EE         float64
	CompC          float64
	OutputAllSteps bool

	UseIFDSampler     bool
	UseTNTSampler     bool
	IFDK              float64
	ForbidReciprocity bool

	UseBorisenkoUpdate bool
	LearningRate       float64
	MinTheta           float64

	// ParamNames is the header row for theta_/dzA_ output files, one
	// entry per statistic.Entry, written as given. cmd/estim fills it with
	// each entry's bare term name, so a term's λ value does not appear in
	// the header.
	ParamNames []string

	ThetaFilePrefix string
	DzAFilePrefix   string
	TaskID          uint64
}
