// Command ergm estimates and simulates Exponential Random Graph Models.
//
// Two binaries share the packages under this module:
//
//	cmd/estim — fits a vector of statistic parameters to an observed
//	            network via Algorithm S (warm start) and Algorithm EE
//	            (Equilibrium Expectation refinement).
//	cmd/sim   — draws networks from a fixed parameter vector via
//	            Metropolis-Hastings sampling over the same statistics.
//
// graph holds the dyad-indexed network representation both binaries
// mutate; statistic and paramreg define and resolve the change-statistic
// vocabulary; sampler implements the Basic/IFD/TNT proposal kernels;
// estimator and simulator drive the two top-level algorithms; configfile,
// attrfile, and pajek parse the three on-disk input formats.
package ergm
