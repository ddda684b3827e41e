// Package configfile parses the estim/sim configuration grammar spec.md
// §6 defines: "# " comments, blank lines ignored, case-insensitive
// `keyword = value` pairs, values that are numbers, booleans
// (True/False), bare or quoted strings, or brace-delimited sets of
// statistic terms (`structParams = {Arc = -4.0, AltKTrianglesT(2.5) =
// 0.8}`, `attrParams = {Sender(gender)}`, `dyadicParams =
// {GeoDistance(lat, long)}`, `attrInteractionParams =
// {MatchingInteraction(attrA, attrB)}`).
//
// No library in the retrieval pack parses this grammar (it is neither
// YAML nor INI); a hand-rolled scanner is used in the teacher's house
// style, as core/ and builder/ hand-roll their own small encodings rather
// than pull in a mismatched format library.
package configfile
