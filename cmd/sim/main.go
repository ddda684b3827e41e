// Command sim draws a Monte Carlo sample from a fixed parameter vector,
// starting from an empty graph, an Erdős-Rényi graph with a configured
// arc count (IFD sampler), a Bernoulli(randomSparseP) random graph, or a
// loaded cERGM seed network, then runs
// burn-in followed by sample_size recorded batches of interval proposals
// each, emitting one row per sample to statsFile.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergm/attrfile"
	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/configfile"
	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/internal/rng"
	"github.com/katalvlaran/ergm/internal/runlog"
	"github.com/katalvlaran/ergm/pajek"
	"github.com/katalvlaran/ergm/paramreg"
	"github.com/katalvlaran/ergm/simulator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "verbose logging")
	quiet := fs.Bool("q", false, "quiet logging (warnings and errors only)")
	help := fs.Bool("h", false, "print recognised configuration keywords and exit")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help {
		printKeywords(os.Stderr)
		return 0
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: sim [-v|-q] <config-file>")
		return 1
	}

	lvl := runlog.Normal
	switch {
	case *verbose:
		lvl = runlog.Verbose
	case *quiet:
		lvl = runlog.Quiet
	}
	logger := runlog.New(os.Stderr, lvl)

	if err := runSimulation(fs.Arg(0), logger); err != nil {
		logger.Error("simulation failed", "error", err)
		return 1
	}
	return 0
}

func runSimulation(configPath string, logger *slog.Logger) error {
	cfgFile, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer cfgFile.Close()
	cfg, err := configfile.Parse(cfgFile)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	specs := cfg.TermSpecs()
	if len(specs) == 0 {
		return fmt.Errorf("sim: no statistic terms configured (structParams/attrParams/dyadicParams/attrInteractionParams all empty)")
	}

	isDirected, err := cfg.Bool("isDirected", false)
	if err != nil {
		return err
	}
	mode := graph.Undirected
	if isDirected {
		mode = graph.Directed
	}

	var opts []graph.Option
	if allowLoops, err := cfg.Bool("allowLoops", false); err != nil {
		return err
	} else if allowLoops {
		opts = append(opts, graph.WithLoops())
	}
	forbidReciprocity, err := cfg.Bool("forbidReciprocity", false)
	if err != nil {
		return err
	}
	if forbidReciprocity && mode == graph.Directed {
		opts = append(opts, graph.WithReciprocityForbidden())
	}

	citationERGM, err := cfg.Bool("citationERGM", false)
	if err != nil {
		return err
	}
	arclistPath := cfg.String("arclistFile", "")
	var pajekFile *os.File
	n, nA := 0, 0
	if citationERGM {
		if arclistPath == "" {
			return fmt.Errorf("sim: citationERGM requires arclistFile as the seed network")
		}
		terms, _, err := readTermFile(cfg.String("termFile", ""))
		if err != nil {
			return fmt.Errorf("sim: termFile: %w", err)
		}
		opts = append(opts, graph.WithCERGM(terms))

		pajekFile, err = os.Open(arclistPath)
		if err != nil {
			return err
		}
		defer pajekFile.Close()
		if n, nA, err = pajek.VertexCount(pajekFile); err != nil {
			return err
		}
		if _, err := pajekFile.Seek(0, 0); err != nil {
			return err
		}
	} else {
		if n, err = cfg.Int("numNodes", 0); err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("sim: numNodes must be positive")
		}
	}

	table, err := loadAttrs(cfg, n)
	if err != nil {
		return err
	}

	registry := paramreg.NewRegistry()
	entries, theta, err := registry.BindWithTheta(specs, cfg.InitialTheta(), table)
	if err != nil {
		return err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	scfg, err := simulatorConfig(cfg, names, citationERGM)
	if err != nil {
		return err
	}

	taskID, err := cfg.Int("taskID", 0)
	if err != nil {
		return err
	}
	rand := rng.Seed(uint64(taskID))

	var pajekReader io.Reader
	if citationERGM {
		pajekReader = pajekFile
	}
	g, err := simulator.BuildInitial(n, nA, mode, opts, scfg, pajekReader, rand)
	if err != nil {
		return err
	}
	logger.Info("built initial network", "n", g.N(), "mode", mode.String(),
		"arcs", g.ArcCount(), "edges", g.EdgeCount())

	logger.Info("starting simulation", "burnin", scfg.Burnin,
		"sampleSize", scfg.SampleSize, "interval", scfg.Interval)
	if err := simulator.Run(g, entries, theta, scfg, rand); err != nil {
		return err
	}
	logger.Info("simulation complete", "statsFile", scfg.StatsFile)
	return nil
}

func loadAttrs(cfg *configfile.Config, n int) (*attrs.Table, error) {
	table := attrs.New(n)
	binR, binClose, err := openOptional(cfg.String("binattrFile", ""))
	if err != nil {
		return nil, err
	}
	defer binClose()
	catR, catClose, err := openOptional(cfg.String("catattrFile", ""))
	if err != nil {
		return nil, err
	}
	defer catClose()
	contR, contClose, err := openOptional(cfg.String("contattrFile", ""))
	if err != nil {
		return nil, err
	}
	defer contClose()
	setR, setClose, err := openOptional(cfg.String("setattrFile", ""))
	if err != nil {
		return nil, err
	}
	defer setClose()

	if err := attrfile.PopulateTable(table, binR, catR, contR, setR); err != nil {
		return nil, err
	}
	return table, nil
}

func simulatorConfig(cfg *configfile.Config, names []string, citationERGM bool) (simulator.Config, error) {
	var sc simulator.Config
	var err error
	if sc.NumNodes, err = cfg.Int("numNodes", 0); err != nil {
		return sc, err
	}
	if sc.SampleSize, err = cfg.Int("sampleSize", 1000); err != nil {
		return sc, err
	}
	if sc.Interval, err = cfg.Int("interval", 1000); err != nil {
		return sc, err
	}
	if sc.Burnin, err = cfg.Int("burnin", 10000); err != nil {
		return sc, err
	}
	if sc.ForbidReciprocity, err = cfg.Bool("forbidReciprocity", false); err != nil {
		return sc, err
	}
	if sc.UseIFDSampler, err = cfg.Bool("useIFDsampler", false); err != nil {
		return sc, err
	}
	if sc.UseTNTSampler, err = cfg.Bool("useTNTsampler", false); err != nil {
		return sc, err
	}
	if sc.IFDK, err = cfg.Float64("ifd_K", 0.1); err != nil {
		return sc, err
	}
	if sc.NumArcs, err = cfg.Int("numArcs", 0); err != nil {
		return sc, err
	}
	if cfg.Has("randomSparseP") {
		if sc.RandomSparseP, err = cfg.Float64("randomSparseP", 0); err != nil {
			return sc, err
		}
		sc.UseRandomSparseStart = true
	}
	sc.CERGM = citationERGM
	sc.StatsFile = cfg.String("statsFile", "stats.txt")
	if sc.OutputSimulatedNetwork, err = cfg.Bool("outputSimulatedNetwork", false); err != nil {
		return sc, err
	}
	sc.SimNetFilePrefix = cfg.String("simNetFilePrefix", cfg.String("outputFileSuffixBase", "sim"))
	sc.ParamNames = names
	return sc, nil
}

// openOptional opens path (if non-empty) and returns it as an io.Reader
// alongside a close func, rather than a possibly-nil *os.File: passing a
// nil *os.File through an io.Reader-typed parameter produces a non-nil
// interface wrapping a nil pointer, not the literal nil that
// attrfile.PopulateTable checks for.
func openOptional(path string) (io.Reader, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func readTermFile(path string) ([]int, int, error) {
	if path == "" {
		return nil, 0, fmt.Errorf("file path is empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return readIntColumn(f)
}

// readIntColumn reads a termFile: one whitespace-separated integer per
// node, one per line, returning the values and the largest seen.
func readIntColumn(r io.Reader) (values []int, maxVal int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, 0, err
			}
			values = append(values, v)
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return values, maxVal, nil
}
