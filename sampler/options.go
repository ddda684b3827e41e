package sampler

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/ergm/statistic"
)

// Sentinel errors for option validation.
var (
	// ErrThetaEntryMismatch indicates Theta and Entries have different
	// lengths.
	ErrThetaEntryMismatch = errors.New("sampler: len(Theta) != len(Entries)")

	// ErrIncompatibleRestrictions indicates two mutually exclusive move
	// restrictions were both requested (spec.md §4.3.4: allow-loops is
	// incompatible with snowball and cERGM).
	ErrIncompatibleRestrictions = errors.New("sampler: allow-loops is incompatible with snowball-conditional or cERGM")
)

// Options bundles everything every sampler variant needs to run one batch
// of m proposals: the parameter vector, the bound statistic entries, the
// process-local RNG, and the move-restriction flags (the other flags live
// on the graph; the proposal filter reads ForbidReciprocity from here,
// while graph.Graph's own reciprocity flag only feeds its dyad count).
type Options struct {
	Theta             []float64
	Entries           []statistic.Entry
	Rng               *rand.Rand
	ForbidReciprocity bool

	// IFDK is the "K" scale constant in the IFD step-size formula
	// (spec.md §4.3.2); unused by Basic/TNT.
	IFDK float64
}

// Validate checks internal consistency; callers should call it once before
// the first Run/RunIFD/RunTNT call on a given Options value.
func (o Options) Validate() error {
	if len(o.Theta) != len(o.Entries) {
		return ErrThetaEntryMismatch
	}
	return nil
}
