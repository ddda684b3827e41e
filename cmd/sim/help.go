package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/ergm/internal/keywords"
)

func printKeywords(w io.Writer) {
	fmt.Fprintln(w, "statistic term sets:")
	for _, k := range keywords.TermSets {
		fmt.Fprintln(w, "  "+k)
	}
	fmt.Fprintln(w, "scalar keywords:")
	for _, k := range keywords.Scalars {
		fmt.Fprintln(w, "  "+k)
	}
}
