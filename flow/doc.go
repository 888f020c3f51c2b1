// Package flow computes D8 steepest-descent flow directions over an
// elevation raster.Grid and, from them, avalanche runout zones downslope of
// steep, excluded-aspect source cells.
//
// The vocabulary is that of a routing pass over sources: a bounded
// propagation loop and an Options struct of tunables. The semantics are
// terrain-flow rather than graph max-flow: Route pushes a decaying
// intensity value downhill from every steep, excluded-aspect source cell
// through the D8 flow graph until it fades or reaches a step budget, then
// spreads it laterally.
//
// Two algorithms:
//
//   - D8 direction: for each interior cell, the steepest strictly-downhill
//     neighbor among the 8-connected neighborhood, weighted by distance
//     (1 for cardinal, sqrt(2) for diagonal). No downhill neighbor yields
//     the raster.NoFlowDirection sentinel.
//
//     Time: O(W*H), one pass, 8 neighbor checks per interior cell.
//
//   - Runout propagation: for every source cell, an edge blend is applied
//     directly, then a bounded D8 walk marks downslope cells with a
//     decaying intensity (at most 50 steps, stopping once intensity drops
//     below 0.05), followed by two iterations of a 4-neighbor lateral
//     dilation that reads from a frozen snapshot each iteration.
//
//     Time: O(S*min(50, path length)) for the source walk plus O(W*H) per
//     dilation iteration, where S is the number of source cells.
//     Memory: O(W*H) for the direction grid and the runout grid.
package flow
