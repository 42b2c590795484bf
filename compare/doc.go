// Package compare holds the ordered collection of accepted job results for
// linked, side-by-side visualization.
//
// Each view owns a stable color table: a (view, cluster) pair keeps its
// display identity across redraws and across removal of other views. No
// semantic alignment is attempted between clusters of different views;
// cluster 0 of one algorithm has nothing to do with cluster 0 of another.
//
// The view state is mutated only by the single consumer reading orchestrator
// results, so it carries no internal locking.
package compare
