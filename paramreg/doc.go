// Package paramreg resolves the configuration-file term names spec.md §6
// accepts (e.g. "AltKTrianglesT(2.0)", "Sender(gender)",
// "BinaryPairInteraction(gender,smoker)") into bound statistic.Func
// closures, grouped into the fixed structural -> nodal -> dyadic ->
// interaction evaluation order statistic.CalcChangeStats requires.
//
// Modelled on the teacher's builder/config.go + builder/options.go split:
// a small static registry of factories (one per statistic family) plus a
// Bind step that resolves attribute names against a loaded attrs.Table,
// mirroring builder's IDFn/WeightFn plugin resolution.
package paramreg
