// Command estim runs the Algorithm S / Algorithm EE two-stage estimator
// over a loaded network, writing one theta_<prefix>_<taskid>.txt row per
// recorded iteration and one dzA_<prefix>_<taskid>.txt row alongside it.
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
	"github.com/katalvlaran/ergm/estimator"
	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/internal/rng"
	"github.com/katalvlaran/ergm/internal/runlog"
	"github.com/katalvlaran/ergm/pajek"
	"github.com/katalvlaran/ergm/paramreg"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("estim", flag.ContinueOnError)
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
		fmt.Fprintln(os.Stderr, "usage: estim [-v|-q] <config-file>")
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

	if err := runEstimation(fs.Arg(0), logger); err != nil {
		logger.Error("estimation failed", "error", err)
		return 1
	}
	return 0
}

func runEstimation(configPath string, logger *slog.Logger) error {
	cfgFile, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer cfgFile.Close()
	cfg, err := configfile.Parse(cfgFile)
	if err != nil {
		return fmt.Errorf("estim: %w", err)
	}

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info("loaded network", "n", g.N(), "mode", g.Mode().String(),
		"arcs", g.ArcCount(), "edges", g.EdgeCount())

	table, err := loadAttrs(cfg, g.N())
	if err != nil {
		return err
	}

	specs := cfg.TermSpecs()
	if len(specs) == 0 {
		return fmt.Errorf("estim: no statistic terms configured (structParams/attrParams/dyadicParams/attrInteractionParams all empty)")
	}
	registry := paramreg.NewRegistry()
	entries, theta0, err := registry.BindWithTheta(specs, cfg.InitialTheta(), table)
	if err != nil {
		return err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	logger.Info("bound statistics", "count", len(entries))

	taskID, err := cfg.Int("taskID", 0)
	if err != nil {
		return err
	}
	ecfg, err := estimatorConfig(cfg, names, uint64(taskID))
	if err != nil {
		return err
	}

	rand := rng.Seed(uint64(taskID))
	logger.Info("starting Algorithm S / Algorithm EE", "sSteps", ecfg.SSteps, "eeSteps", ecfg.EESteps)
	theta, err := estimator.Run(g, entries, ecfg, theta0, rand)
	if err != nil {
		return err
	}

	for i, name := range names {
		logger.Info("final theta", "term", name, "value", theta[i])
	}
	return nil
}

func loadGraph(cfg *configfile.Config) (*graph.Graph, error) {
	arclistPath := cfg.String("arclistFile", "")
	if arclistPath == "" {
		return nil, fmt.Errorf("estim: arclistFile is required")
	}
	isDirected, err := cfg.Bool("isDirected", false)
	if err != nil {
		return nil, err
	}
	mode := graph.Undirected
	if isDirected {
		mode = graph.Directed
	}

	var opts []graph.Option
	if allowLoops, err := cfg.Bool("allowLoops", false); err != nil {
		return nil, err
	} else if allowLoops {
		opts = append(opts, graph.WithLoops())
	}
	if forbid, err := cfg.Bool("forbidReciprocity", false); err != nil {
		return nil, err
	} else if forbid && mode == graph.Directed {
		opts = append(opts, graph.WithReciprocityForbidden())
	}

	useConditional, err := cfg.Bool("useConditionalEstimation", false)
	if err != nil {
		return nil, err
	}
	if useConditional {
		zones, maxZone, err := readIntColumn(cfg.String("zoneFile", ""))
		if err != nil {
			return nil, fmt.Errorf("estim: zoneFile: %w", err)
		}
		opts = append(opts, graph.WithSnowball(zones, maxZone))
	}

	citationERGM, err := cfg.Bool("citationERGM", false)
	if err != nil {
		return nil, err
	}
	if citationERGM {
		terms, _, err := readIntColumn(cfg.String("termFile", ""))
		if err != nil {
			return nil, fmt.Errorf("estim: termFile: %w", err)
		}
		opts = append(opts, graph.WithCERGM(terms))
	}

	f, err := os.Open(arclistPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pajek.Read(f, mode, opts...)
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

func estimatorConfig(cfg *configfile.Config, names []string, taskID uint64) (estimator.Config, error) {
	var ec estimator.Config
	var err error
	if ec.SSteps, err = cfg.Int("Ssteps", 1000); err != nil {
		return ec, err
	}
	if ec.SamplerSteps, err = cfg.Int("samplerSteps", 100); err != nil {
		return ec, err
	}
	if ec.EESteps, err = cfg.Int("EEsteps", 500); err != nil {
		return ec, err
	}
	if ec.EEInnerSteps, err = cfg.Int("EEinnerSteps", 100); err != nil {
		return ec, err
	}
	if ec.ACA_S, err = cfg.Float64("ACA_S", 0.1); err != nil {
		return ec, err
	}
	if ec.ACA_EE, err = cfg.Float64("ACA_EE", 0.01); err != nil {
		return ec, err
	}
	if ec.CompC, err = cfg.Float64("compC", 3.0); err != nil {
		return ec, err
	}
	if ec.OutputAllSteps, err = cfg.Bool("outputAllSteps", false); err != nil {
		return ec, err
	}
	if ec.UseIFDSampler, err = cfg.Bool("useIFDsampler", false); err != nil {
		return ec, err
	}
	if ec.UseTNTSampler, err = cfg.Bool("useTNTsampler", false); err != nil {
		return ec, err
	}
	if ec.IFDK, err = cfg.Float64("ifd_K", 0.1); err != nil {
		return ec, err
	}
	if ec.ForbidReciprocity, err = cfg.Bool("forbidReciprocity", false); err != nil {
		return ec, err
	}
	if ec.UseBorisenkoUpdate, err = cfg.Bool("useBorisenkoUpdate", false); err != nil {
		return ec, err
	}
	if ec.LearningRate, err = cfg.Float64("learningRate", 0.01); err != nil {
		return ec, err
	}
	if ec.MinTheta, err = cfg.Float64("minTheta", 0.01); err != nil {
		return ec, err
	}
	ec.ParamNames = names
	ec.ThetaFilePrefix = cfg.String("thetaFilePrefix", cfg.String("outputFileSuffixBase", "run"))
	ec.DzAFilePrefix = cfg.String("dzAFilePrefix", ec.ThetaFilePrefix)
	ec.TaskID = taskID
	return ec, nil
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

// readIntColumn reads a zoneFile/termFile: one whitespace-separated
// integer per node, one per line. maxVal is the largest value seen,
// giving zoneFile's max_zone directly.
func readIntColumn(path string) (values []int, maxVal int, err error) {
	if path == "" {
		return nil, 0, fmt.Errorf("file path is empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
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
