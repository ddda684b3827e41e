package attrfile

import (
	"io"

	"github.com/katalvlaran/ergm/attrs"
)

// PopulateTable loads whichever of the four attribute files is non-nil
// into table, installing one slot per header name. A file's row count
// must equal table.N(); attrs.ErrRowCountMismatch surfaces otherwise.
func PopulateTable(table *attrs.Table, binR, catR, contR, setR io.Reader) error {
	if binR != nil {
		names, cols, err := LoadBinary(binR)
		if err != nil {
			return err
		}
		for i, name := range names {
			if err := table.SetBinary(name, cols[i]); err != nil {
				return err
			}
		}
	}
	if catR != nil {
		names, cols, err := LoadCategorical(catR)
		if err != nil {
			return err
		}
		for i, name := range names {
			if err := table.SetCategorical(name, cols[i]); err != nil {
				return err
			}
		}
	}
	if contR != nil {
		names, cols, err := LoadContinuous(contR)
		if err != nil {
			return err
		}
		for i, name := range names {
			if err := table.SetContinuous(name, cols[i]); err != nil {
				return err
			}
		}
	}
	if setR != nil {
		names, cols, err := LoadSetCategory(setR)
		if err != nil {
			return err
		}
		for i, name := range names {
			if err := table.SetSetCategory(name, cols[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
