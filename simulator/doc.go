// Package simulator implements the burn-in + thinning simulation loop of
// spec.md §4.5: build an initial graph (one of four strategies depending
// on the sampler kernel / ERGM variant in use), burn in, then draw
// sample_size samples of interval proposals each, emitting a per-sample
// statistic line and, optionally, a Pajek snapshot.
//
// Modelled on the teacher's dijkstra/ package shape: a single exported
// entry point over a small Config.
package simulator
