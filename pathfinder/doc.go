// Package pathfinder computes a constrained least-cost route across an
// analyzed raster, from a start pixel to an end pixel, subject to a
// climber's personal gradient limit and a set of aspects to avoid.
//
// The search is an A* variant over the 8-connected pixel grid: a min-heap
// of open nodes, a parent map for path reconstruction, and a lazy
// decrease-key (stale heap entries are dropped on pop rather than patched
// in place). Unlike plain Dijkstra, the heap orders on f = g + h rather
// than g alone, and the search terminates as soon as the end pixel is
// popped rather than when the heap empties, since the Euclidean-distance
// heuristic is consistent and admissible for the grid's edge costs.
//
// Edge feasibility folds in raster lookups unrelated to cost (aspect and
// gradient limits); a feasibility violation by aspect aborts generation of
// the rest of the current node's successors entirely rather than skipping
// just that neighbor. This is intentional: a node adjacent to a forbidden
// aspect is treated as itself adjacent to a hazard zone, at the cost of
// occasionally refusing a reachable detour.
//
// A frontier.Observer, if supplied via WithObserver, is visited once per
// dequeue so a caller can render the search's expanding boundary live.
//
// Complexity:
//   - Time: O(V log V) in the worst case, where V = W×H, each pixel
//     entering the heap a bounded number of times under lazy decrease-key.
//   - Space: O(V) for the distance, parent, and visited maps plus the heap.
package pathfinder
