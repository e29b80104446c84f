// Package trace renders the swap-by-swap history of a sort.
//
// A trace is the initial row plus the [disks.Step] values recorded by
// [disks.TraceAlternate] or [disks.TraceLawnmower]. [ToDOT] turns it into a
// Graphviz digraph with one node per row state, laid out top to bottom, and
// one edge per swap labelled with its pass and index. [RenderSVG] renders the
// same graph through go-graphviz.
//
// Light disks are drawn as white cells and dark disks as black cells; the two
// disks swapped to reach a state are outlined.
package trace
