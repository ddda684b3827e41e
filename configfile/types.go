package configfile

import "github.com/katalvlaran/ergm/paramreg"

// ParamEntry pairs a bound-term specification with the initial theta value
// the config line assigned it (spec.md §6: "structParams = {Arc = -4.0,
// ...}"). Entries written without an "= value" suffix (e.g. attrParams'
// bare "Sender(gender)") carry InitialTheta 0 and HasInitial false.
type ParamEntry struct {
	Spec         paramreg.TermSpec
	InitialTheta float64
	HasInitial   bool
}

// Config is the fully parsed contents of one estim/sim configuration file:
// the four statistic-term sets plus every scalar keyword spec.md §6
// recognises for the estimation and simulation command lines. Scalars are
// kept in their raw string form in Values and exposed through the typed
// accessors in accessors.go; callers read only the keywords relevant to
// the binary they are building (cmd/estim ignores simulation-only keys and
// vice versa).
type Config struct {
	StructParams         []ParamEntry
	AttrParams           []ParamEntry
	DyadicParams         []ParamEntry
	AttrInteractionParams []ParamEntry

	// Values holds every scalar key = value pair, keyed by the
	// lower-cased keyword. Filenames referenced as values keep their
	// original case.
	Values map[string]string
}

// AllParams concatenates the four term sets in spec.md's declared order
// (structural, nodal/attribute, dyadic, attribute-interaction), the order
// paramreg.Registry.Bind expects its TermSpec slice to arrive in before it
// re-sorts by Kind.
func (c *Config) AllParams() []ParamEntry {
	out := make([]ParamEntry, 0, len(c.StructParams)+len(c.AttrParams)+len(c.DyadicParams)+len(c.AttrInteractionParams))
	out = append(out, c.StructParams...)
	out = append(out, c.AttrParams...)
	out = append(out, c.DyadicParams...)
	out = append(out, c.AttrInteractionParams...)
	return out
}

// TermSpecs strips the initial-theta bookkeeping, returning the slice
// paramreg.Registry.Bind consumes directly.
func (c *Config) TermSpecs() []paramreg.TermSpec {
	entries := c.AllParams()
	specs := make([]paramreg.TermSpec, len(entries))
	for i, e := range entries {
		specs[i] = e.Spec
	}
	return specs
}

// InitialTheta returns the theta0 vector matching TermSpecs' order, filling
// in 0 for any entry that did not carry an explicit "= value".
func (c *Config) InitialTheta() []float64 {
	entries := c.AllParams()
	theta := make([]float64, len(entries))
	for i, e := range entries {
		theta[i] = e.InitialTheta
	}
	return theta
}
