// Package graph is the incrementally-maintained graph store at the heart of
// the ERGM engine: fixed node count N, one of three modes (directed,
// undirected, bipartite), adjacency lists kept consistent with a flat
// arc/edge list, and a pluggable two-path cache (see package twopath) that
// every change-statistic in package statistic reads in sub-linear time.
//
// Generalized from the teacher library's core.Graph (thread-safe, string-ID,
// general-purpose adjacency lists) to an integer-ID, fixed-N, single-owner
// graph whose shape is dictated entirely by spec.md §3: a sampler borrows it
// mutably for one batch of proposals and nothing else touches it (spec.md
// §5), so there is deliberately no internal locking here.
//
//	graph/types.go    — Mode, Arc, Edge, Graph struct, sentinel errors
//	graph/options.go  — functional Option (loops, reciprocity, snowball, cERGM, cache kind)
//	graph/arcs.go     — directed-mode InsertArc/RemoveArc/IsArc and two-path wiring
//	graph/edges.go    — undirected/bipartite InsertEdge/RemoveEdge/IsEdge and two-path wiring
//	graph/dyads.go    — admissible-dyad counting for the TNT/IFD samplers
//	graph/snowball.go — prev_wave_degree bookkeeping for conditional estimation
//	graph/cergm.go    — all_maxtermsender_arcs bookkeeping for cERGM
package graph
