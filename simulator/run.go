package simulator

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/pajek"
	"github.com/katalvlaran/ergm/sampler"
	"github.com/katalvlaran/ergm/statistic"
)

// Run executes spec.md §4.5's simulation loop over g (already built via
// BuildInitial): burn-in proposals (stats discarded), then sample_size
// samples of interval proposals each, emitting one stats-file line per
// sample and, if configured, a numbered Pajek snapshot.
func Run(g *graph.Graph, entries []statistic.Entry, theta []float64, cfg Config, rng *rand.Rand) error {
	opts := sampler.Options{Theta: theta, Entries: entries, Rng: rng, ForbidReciprocity: cfg.ForbidReciprocity, IFDK: cfg.IFDK}

	runBatch := func(m int, ifdState *sampler.IFDState) (sampler.Result, error) {
		switch {
		case cfg.UseIFDSampler:
			res, st, err := sampler.RunIFD(g, m, opts, *ifdState)
			*ifdState = st
			return res, err
		case cfg.UseTNTSampler:
			return sampler.RunTNT(g, m, opts)
		default:
			return sampler.Run(g, m, opts)
		}
	}

	arcIdx := 0
	for k, e := range entries {
		if e.Name == "Arc" {
			arcIdx = k
		}
	}
	ifdState := sampler.NewIFDState(g, theta[arcIdx])

	if cfg.Burnin > 0 {
		if _, err := runBatch(cfg.Burnin, &ifdState); err != nil {
			return err
		}
	}

	statsF, err := os.Create(cfg.StatsFile)
	if err != nil {
		return err
	}
	defer statsF.Close()
	sw := bufio.NewWriter(statsF)
	defer sw.Flush()

	header := "iteration"
	for _, name := range cfg.ParamNames {
		header += " " + name
	}
	header += " acceptance_rate\n"
	if _, err := sw.WriteString(header); err != nil {
		return err
	}

	z := statistic.EmptyGraphStats(g, entries)

	for sampleIdx := 1; sampleIdx <= cfg.SampleSize; sampleIdx++ {
		res, err := runBatch(cfg.Interval, &ifdState)
		if err != nil {
			return err
		}
		for k := range z {
			z[k] += res.AddStats[k] - res.DelStats[k]
		}

		if _, err := fmt.Fprintf(sw, "%d", sampleIdx); err != nil {
			return err
		}
		for _, v := range z {
			if _, err := fmt.Fprintf(sw, " %g", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(sw, " %g\n", res.AcceptanceRate()); err != nil {
			return err
		}

		if cfg.OutputSimulatedNetwork {
			if err := writeSnapshot(g, cfg.SimNetFilePrefix, sampleIdx); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSnapshot(g *graph.Graph, prefix string, iter int) error {
	path := fmt.Sprintf("%s_%d.net", prefix, iter)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pajek.Write(f, g)
}
