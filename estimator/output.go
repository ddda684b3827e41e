package estimator

import (
	"bufio"
	"fmt"
	"os"
)

// record is one line written to theta_/dzA_ output files: an iteration
// index, the per-parameter vector, and the batch's acceptance rate
// (spec.md §4.4's `iteration θ_1 … θ_P acceptance_rate` row format).
type record struct {
	iteration int
	values    []float64
	acceptance float64
}

// writer accumulates records and flushes them to theta_<prefix>_<task>.txt
// and dzA_<prefix>_<task>.txt on Close, with the shared header row of
// parameter names (spec.md §6's output-file convention).
type writer struct {
	thetaF *os.File
	dzAF   *os.File
	thetaW *bufio.Writer
	dzAW   *bufio.Writer
}

func newWriter(cfg Config) (*writer, error) {
	thetaPath := fmt.Sprintf("theta_%s_%d.txt", cfg.ThetaFilePrefix, cfg.TaskID)
	dzAPath := fmt.Sprintf("dzA_%s_%d.txt", cfg.DzAFilePrefix, cfg.TaskID)

	thetaF, err := os.Create(thetaPath)
	if err != nil {
		return nil, err
	}
	dzAF, err := os.Create(dzAPath)
	if err != nil {
		thetaF.Close()
		return nil, err
	}

	w := &writer{thetaF: thetaF, dzAF: dzAF, thetaW: bufio.NewWriter(thetaF), dzAW: bufio.NewWriter(dzAF)}
	header := "iteration"
	for _, name := range cfg.ParamNames {
		header += " " + name
	}
	header += " acceptance_rate\n"
	if _, err := w.thetaW.WriteString(header); err != nil {
		return nil, err
	}
	if _, err := w.dzAW.WriteString(header); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *writer) writeTheta(r record) error {
	return w.writeRow(w.thetaW, r)
}

func (w *writer) writeDzA(r record) error {
	return w.writeRow(w.dzAW, r)
}

func (w *writer) writeRow(dst *bufio.Writer, r record) error {
	if _, err := fmt.Fprintf(dst, "%d", r.iteration); err != nil {
		return err
	}
	for _, v := range r.values {
		if _, err := fmt.Fprintf(dst, " %g", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(dst, " %g\n", r.acceptance)
	return err
}

func (w *writer) Close() error {
	if err := w.thetaW.Flush(); err != nil {
		return err
	}
	if err := w.dzAW.Flush(); err != nil {
		return err
	}
	if err := w.thetaF.Close(); err != nil {
		return err
	}
	return w.dzAF.Close()
}
