// Package keywords holds the recognised configuration-file keyword list
// spec.md §6 enumerates, split into the groups -h prints: scalar
// keywords (estimation set ∪ simulation set, deduplicated) and the four
// statistic-term set names.
package keywords

// Scalars is the deduplicated union of the estimation-set and
// simulation-set scalar keywords.
var Scalars = []string{
	"ACA_S", "ACA_EE", "compC",
	"samplerSteps", "Ssteps", "EEsteps", "EEinnerSteps", "outputAllSteps",
	"useIFDsampler", "useTNTsampler", "ifd_K",
	"outputSimulatedNetwork",
	"arclistFile", "binattrFile", "catattrFile", "contattrFile", "setattrFile",
	"thetaFilePrefix", "dzAFilePrefix", "simNetFilePrefix",
	"zoneFile", "useConditionalEstimation",
	"forbidReciprocity",
	"useBorisenkoUpdate", "learningRate", "minTheta",
	"computeStats", "obsStatsFilePrefix", "outputFileSuffixBase",
	"termFile", "citationERGM",
	"numNodes", "sampleSize", "interval", "burnin", "statsFile",
	"numArcs", "allowLoops", "isDirected",
	"randomSparseP",
}

// TermSets names the four brace-delimited statistic-term set keywords.
var TermSets = []string{
	"structParams", "attrParams", "dyadicParams", "attrInteractionParams",
}
