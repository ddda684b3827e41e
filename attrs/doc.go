// Package attrs holds the four optional per-node attribute arrays spec.md §3
// describes: binary, categorical, continuous, and set-of-category. Each
// slot carries its own NA sentinel (0/1/NA for binary, a reserved integer
// for categorical, NaN for continuous, and a per-node presence/absence/NA
// triple for set-of-category).
package attrs
