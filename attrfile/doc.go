// Package attrfile reads the four attribute file kinds spec.md §6/§7 name
// (binattrFile, catattrFile, contattrFile, setattrFile): whitespace-
// separated text, a header line of attribute names, one row per node. The
// binary and categorical readers parse columns of non-negative integers
// with "NA" as the missing sentinel; the continuous reader parses floats
// with "NA" mapped to NaN (the NaN propagation is load-bearing per
// spec.md §46 and must not be special-cased away downstream); the
// set-of-category reader parses bracketed id lists such as "[0,2,5]" into
// attrs.SetState arrays sized to the widest category id seen in the
// column.
package attrfile
