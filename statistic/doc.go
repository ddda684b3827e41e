// Package statistic implements the ~80-strong change-statistic library of
// spec.md §4.2: one function per statistic, each reporting the increment
// produced by adding a single currently-absent arc/edge, in sub-linear time
// wherever the graph store's two-path caches make that possible.
//
// Generalized from the teacher library's function-pointer-free style (no
// package in the teacher dispatches on runtime tag unions) into the tagged
// closure design spec.md §9 calls for: "a faithful re-implementation uses a
// sum type... calc_change_stats pattern-matches and invokes." Go has no sum
// types, so each statistic is instead a closure (package paramreg binds the
// configuration-time parameters — attribute name, lambda, exponent — once,
// at load time, producing a statistic.Func that needs only (g, i, j,
// isDelete) per call) and identification of the Isolates-family statistics
// for the empty-graph helper is done by an explicit tag on the bound entry,
// never by function-pointer equality (spec.md §9's Go-specific resolution
// of that design note).
//
// One file per statistic group, matching the groups spec.md §4.2 itself
// uses: structural_directed.go, structural_undirected.go,
// structural_bipartite.go, nodal_binary.go, nodal_categorical.go,
// nodal_continuous.go, setcat.go, dyadic.go, interaction.go.
package statistic
