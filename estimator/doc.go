// Package estimator implements the two-stage stochastic approximation
// estimator of spec.md §4.4: Algorithm S (cheap warm start) followed by
// Algorithm EE (Equilibrium Expectation), with the optional Borisenko
// update rule and running-variance clamping, operating a sampler.Options
// chain over a graph.Graph.
//
// Modelled on the teacher's prim_kruskal/ package shape (a two-phase
// algorithm package with a single exported entry point); running mean/sd
// for the compC variance clamp uses gonum.org/v1/gonum/stat.MeanVariance
// over a rolling window instead of a hand-rolled accumulator, the same
// extension-of-a-pack-dependency this repo makes elsewhere.
package estimator
