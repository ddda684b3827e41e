// Package sampler implements the three Metropolis-Hastings proposal
// kernels spec.md §4.3 defines over a graph.Graph: Basic (basic.go), IFD
// (Improved Fixed Density, ifd.go), and TNT (Tie-No-Tie, tnt.go). All three
// share the Options/Result contract (options.go, result.go) and the move
// restrictions of spec.md §4.3.4 (restrictions.go): snowball-conditional
// zone admissibility, forbidden reciprocity, cERGM sender/arc restriction,
// and the allow-loops flag.
//
// Modelled on the teacher's flow/ package shape: one file per algorithm
// variant, a shared result type, validated options.
package sampler
