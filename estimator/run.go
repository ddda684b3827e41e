package estimator

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/sampler"
	"github.com/katalvlaran/ergm/statistic"
)

// Run executes Algorithm S followed by Algorithm EE (spec.md §4.4) over g,
// starting from theta0, and returns the final parameter vector. Output
// files are written as the algorithm progresses; outer steps are always
// recorded, inner EE steps only when cfg.OutputAllSteps is set.
func Run(g *graph.Graph, entries []statistic.Entry, cfg Config, theta0 []float64, rng *rand.Rand) ([]float64, error) {
	theta := append([]float64(nil), theta0...)
	t := ObservedStats(g, entries)
	dzA := statistic.EmptyGraphStats(g, entries)
	for k := range dzA {
		dzA[k] -= t[k]
	}

	arcK := arcIndex(cfg.ParamNames)
	if cfg.UseIFDSampler && (arcK >= len(cfg.ParamNames) || cfg.ParamNames[arcK] != "Arc") {
		return nil, errors.New("estimator: IFD sampler requires an Arc parameter")
	}

	out, err := newWriter(cfg)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	ifdState := sampler.NewIFDState(g, theta[arcK])
	history := newThetaHistory(len(theta))

	iteration := 0
	runBatch := func() (sampler.Result, error) {
		opts := sampler.Options{Theta: theta, Entries: entries, Rng: rng, ForbidReciprocity: cfg.ForbidReciprocity, IFDK: cfg.IFDK}
		switch {
		case cfg.UseIFDSampler:
			res, st, err := sampler.RunIFD(g, cfg.SamplerSteps, opts, ifdState)
			ifdState = st
			return res, err
		case cfg.UseTNTSampler:
			return sampler.RunTNT(g, cfg.SamplerSteps, opts)
		default:
			return sampler.Run(g, cfg.SamplerSteps, opts)
		}
	}

	updateDzA := func(res sampler.Result) {
		for k := range dzA {
			dzA[k] += res.AddStats[k] - res.DelStats[k]
		}
	}

	// Algorithm S: cheap warm start.
	for s := 0; s < cfg.SSteps; s++ {
		res, err := runBatch()
		if err != nil {
			return nil, err
		}
		updateDzA(res)
		for k := range theta {
			theta[k] -= cfg.ACA_S * math.Copysign(1, dzA[k])
		}
		iteration++
		if err := out.writeTheta(record{iteration, theta, res.AcceptanceRate()}); err != nil {
			return nil, err
		}
		if err := out.writeDzA(record{iteration, dzA, res.AcceptanceRate()}); err != nil {
			return nil, err
		}
	}

	// Algorithm EE: Equilibrium Expectation refinement.
	for e := 0; e < cfg.EESteps; e++ {
		var last sampler.Result
		for inner := 0; inner < cfg.EEInnerSteps; inner++ {
			res, err := runBatch()
			if err != nil {
				return nil, err
			}
			last = res
			updateDzA(res)
			applyEEUpdate(theta, dzA, cfg)
			history.push(theta)
			history.clampIfUnstable(theta, cfg.CompC)

			if cfg.OutputAllSteps {
				iteration++
				if err := out.writeTheta(record{iteration, theta, res.AcceptanceRate()}); err != nil {
					return nil, err
				}
				if err := out.writeDzA(record{iteration, dzA, res.AcceptanceRate()}); err != nil {
					return nil, err
				}
			}
		}
		if !cfg.OutputAllSteps {
			iteration++
			if err := out.writeTheta(record{iteration, theta, last.AcceptanceRate()}); err != nil {
				return nil, err
			}
			if err := out.writeDzA(record{iteration, dzA, last.AcceptanceRate()}); err != nil {
				return nil, err
			}
		}
	}

	return theta, nil
}

// applyEEUpdate implements spec.md §4.4's Algorithm EE step 2: a plain
// step-size-scaled gradient move, or (if enabled) the Borisenko rule
// coupling the step to the parameter's own current magnitude.
func applyEEUpdate(theta, dzA []float64, cfg Config) {
	for k := range theta {
		if cfg.UseBorisenkoUpdate {
			mag := math.Abs(theta[k])
			if mag < cfg.MinTheta {
				mag = cfg.MinTheta
			}
			theta[k] -= cfg.LearningRate * math.Copysign(1, dzA[k]) * mag
			continue
		}
		theta[k] -= cfg.ACA_EE * dzA[k]
	}
}

// arcIndex locates the "Arc" parameter's index for IFD's initial V
// (spec.md §4.3.2). Returns 0 when no parameter is named Arc; Run rejects
// an IFD run without an Arc parameter before that fallback is used.
func arcIndex(names []string) int {
	for k, n := range names {
		if n == "Arc" {
			return k
		}
	}
	return 0
}
