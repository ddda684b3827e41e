package attrfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergm/attrs"
)

const naToken = "NA"

// readGrid tokenises a whitespace-separated attribute file into its header
// row and the remaining data rows, each split on runs of whitespace.
func readGrid(r io.Reader) (header []string, rows [][]string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("attrfile: empty file")
	}
	header = strings.Fields(scanner.Text())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(header) {
			return nil, nil, fmt.Errorf("attrfile: row has %d fields, header has %d", len(fields), len(header))
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

// LoadBinary parses a binattrFile-shaped reader into one int8 column per
// header name, using attrs.BinaryNA for "NA" cells.
func LoadBinary(r io.Reader) (names []string, cols [][]int8, err error) {
	header, rows, err := readGrid(r)
	if err != nil {
		return nil, nil, err
	}
	cols = make([][]int8, len(header))
	for c := range header {
		col := make([]int8, len(rows))
		for i, row := range rows {
			if row[c] == naToken {
				col[i] = attrs.BinaryNA
				continue
			}
			v, err := strconv.ParseInt(row[c], 10, 8)
			if err != nil {
				return nil, nil, fmt.Errorf("attrfile: %s row %d: %w", header[c], i, err)
			}
			col[i] = int8(v)
		}
		cols[c] = col
	}
	return header, cols, nil
}

// LoadCategorical parses a catattrFile-shaped reader into one int column
// per header name, using attrs.CategoricalNA for "NA" cells.
func LoadCategorical(r io.Reader) (names []string, cols [][]int, err error) {
	header, rows, err := readGrid(r)
	if err != nil {
		return nil, nil, err
	}
	cols = make([][]int, len(header))
	for c := range header {
		col := make([]int, len(rows))
		for i, row := range rows {
			if row[c] == naToken {
				col[i] = attrs.CategoricalNA
				continue
			}
			v, err := strconv.Atoi(row[c])
			if err != nil {
				return nil, nil, fmt.Errorf("attrfile: %s row %d: %w", header[c], i, err)
			}
			col[i] = v
		}
		cols[c] = col
	}
	return header, cols, nil
}

// LoadContinuous parses a contattrFile-shaped reader into one float64
// column per header name, mapping "NA" to NaN.
func LoadContinuous(r io.Reader) (names []string, cols [][]float64, err error) {
	header, rows, err := readGrid(r)
	if err != nil {
		return nil, nil, err
	}
	cols = make([][]float64, len(header))
	for c := range header {
		col := make([]float64, len(rows))
		for i, row := range rows {
			if row[c] == naToken {
				col[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(row[c], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("attrfile: %s row %d: %w", header[c], i, err)
			}
			col[i] = v
		}
		cols[c] = col
	}
	return header, cols, nil
}

// LoadSetCategory parses a setattrFile-shaped reader into one
// [][]attrs.SetState column per header name. Each cell is either "NA"
// (every category absent-as-NA for that node) or a bracketed,
// comma-separated list of present category ids, e.g. "[0,2,5]"; an empty
// "[]" means every category is Absent. The column width is the highest id
// seen across the column, plus one.
func LoadSetCategory(r io.Reader) (names []string, cols [][][]attrs.SetState, err error) {
	header, rows, err := readGrid(r)
	if err != nil {
		return nil, nil, err
	}

	cols = make([][][]attrs.SetState, len(header))
	for c := range header {
		present := make([][]int, len(rows))
		isNA := make([]bool, len(rows))
		width := 0

		for i, row := range rows {
			cell := row[c]
			if cell == naToken {
				isNA[i] = true
				continue
			}
			ids, err := parseBracketedIDs(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("attrfile: %s row %d: %w", header[c], i, err)
			}
			present[i] = ids
			for _, id := range ids {
				if id+1 > width {
					width = id + 1
				}
			}
		}

		col := make([][]attrs.SetState, len(rows))
		for i := range rows {
			states := make([]attrs.SetState, width)
			if isNA[i] {
				for k := range states {
					states[k] = attrs.SetNA
				}
			} else {
				for _, id := range present[i] {
					states[id] = attrs.Present
				}
			}
			col[i] = states
		}
		cols[c] = col
	}
	return header, cols, nil
}

func parseBracketedIDs(cell string) ([]int, error) {
	cell = strings.TrimSpace(cell)
	if !strings.HasPrefix(cell, "[") || !strings.HasSuffix(cell, "]") {
		return nil, fmt.Errorf("expected bracketed set, got %q", cell)
	}
	body := strings.TrimSpace(cell[1 : len(cell)-1])
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	ids := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}
	return ids, nil
}
