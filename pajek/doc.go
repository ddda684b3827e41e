// Package pajek reads and writes the Pajek graph format spec.md §6
// describes: a `*vertices N` (or `*vertices N N_A` for two-mode graphs)
// header, N ignored vertex lines, an `*arcs` or `*edges` section, and one
// 1-based `i j [weight]` line per tie (weight ignored).
package pajek
