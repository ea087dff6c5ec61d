package dbscan

import "fmt"

// Per-sample label states. labelNoise is the value reported to callers
// for noise. labelUnvisited is internal to the expansion: it marks a
// sample the scan has not resolved yet and never survives to the
// returned slice.
const (
	labelNoise     = -1
	labelUnvisited = -2
)

// ExpandClusters grows clusters from core samples through chained
// density-reachability and returns the per-sample cluster labels.
//
// neighborhoods[i] lists the eps-neighbors of sample i, excluding i, and
// isCore marks the density cores, as produced by [CoreSampleMask].
// Samples are scanned in index order. Each unresolved core sample seeds
// a new cluster, and a FIFO frontier absorbs everything
// density-reachable from it: core neighbors join the frontier and keep
// expanding, while non-core neighbors receive the label but stop the
// chain (border samples). Samples reached by no core stay at -1 (noise).
// An explicit work list is used rather than recursion so that long dense
// chains cannot blow the stack.
//
// Cluster IDs are assigned in increasing order of their seed's index.
// A border sample within eps of two clusters keeps the label of
// whichever expansion reached it first; this is deterministic for a
// fixed input ordering but may change if neighbor lists are reordered.
//
// Panics if len(isCore) != len(neighborhoods) or if any neighbor index
// is out of range. Both indicate a broken contract with the neighborhood
// source, and aborting beats silently mislabeling.
func ExpandClusters(isCore []bool, neighborhoods [][]int) []int {
	if len(isCore) != len(neighborhoods) {
		panic(fmt.Sprintf("dbscan: isCore length %d does not match %d neighborhoods",
			len(isCore), len(neighborhoods)))
	}
	n := len(neighborhoods)

	// labels doubles as the per-sample state machine: labelUnvisited,
	// labelNoise (visited, unclaimed), or a cluster ID. A sample only
	// ever moves forward: unvisited → noise → labeled, and a labeled
	// sample is final.
	labels := make([]int, n)
	for i := range labels {
		labels[i] = labelUnvisited
	}

	queue := make([]int, 0, n)
	nextCluster := 0

	for i := 0; i < n; i++ {
		if labels[i] != labelUnvisited {
			continue
		}
		if !isCore[i] {
			// Tentative noise: a later expansion may still claim it as
			// a border sample.
			labels[i] = labelNoise
			continue
		}

		labels[i] = nextCluster
		queue = append(queue[:0], i)
		for head := 0; head < len(queue); head++ {
			p := queue[head]
			for _, q := range neighborhoods[p] {
				if q < 0 || q >= n {
					panic(fmt.Sprintf("dbscan: neighbor index %d of sample %d out of range [0, %d)",
						q, p, n))
				}
				if labels[q] >= 0 {
					// Already claimed; the first expansion to reach a
					// sample keeps it.
					continue
				}
				wasUnvisited := labels[q] == labelUnvisited
				labels[q] = nextCluster
				// Only unvisited cores extend the frontier. A sample at
				// labelNoise was already examined by the outer scan and
				// found non-core.
				if wasUnvisited && isCore[q] {
					queue = append(queue, q)
				}
			}
		}
		nextCluster++
	}

	return labels
}
