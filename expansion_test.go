package dbscan

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestExpandClusters_Chain(t *testing.T) {
	// Five points in a line, each within eps of only its immediate
	// neighbors. With MinSamples 3 only the interior points are core,
	// but the endpoints are absorbed as border samples.
	neighborhoods := [][]int{{1}, {0, 2}, {1, 3}, {2, 4}, {3}}
	isCore := CoreSampleMask(neighborhoods, nil, 3)

	wantCore := []bool{false, true, true, true, false}
	if !reflect.DeepEqual(isCore, wantCore) {
		t.Fatalf("core mask = %v, want %v", isCore, wantCore)
	}

	labels := ExpandClusters(isCore, neighborhoods)
	want := []int{0, 0, 0, 0, 0}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestExpandClusters_BorderFirstWriterWins(t *testing.T) {
	// Sample 1 is a border sample within eps of two cores that are not
	// within eps of each other. The cluster seeded first (from the lower
	// scan index) claims it and it is never reassigned.
	neighborhoods := [][]int{{1}, {0, 2}, {1}}
	isCore := []bool{true, false, true}

	labels := ExpandClusters(isCore, neighborhoods)
	want := []int{0, 0, 1}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestExpandClusters_NoiseReclaimedAsBorder(t *testing.T) {
	// Sample 0 is scanned first, found non-core, and provisionally marked
	// noise. The expansion seeded at sample 1 must still claim it.
	neighborhoods := [][]int{{1}, {0}}
	isCore := []bool{false, true}

	labels := ExpandClusters(isCore, neighborhoods)
	want := []int{0, 0}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestExpandClusters_IsolatedNoise(t *testing.T) {
	neighborhoods := [][]int{{}}
	isCore := []bool{false}

	labels := ExpandClusters(isCore, neighborhoods)
	if labels[0] != -1 {
		t.Errorf("labels[0] = %d, want -1", labels[0])
	}
}

func TestExpandClusters_NonCoreNeverExpands(t *testing.T) {
	// Core 0 reaches border 1; border 1 is within eps of 2, but a border
	// sample must not propagate membership, so 2 stays noise.
	neighborhoods := [][]int{{1}, {0, 2}, {1}}
	isCore := []bool{true, false, false}

	labels := ExpandClusters(isCore, neighborhoods)
	want := []int{0, 0, -1}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestExpandClusters_MonotonicSeedOrder(t *testing.T) {
	// Three separated pairs of mutual cores. Cluster IDs must follow the
	// scan order of their seeds: 0 for the pair at {0,1}, 1 for {2,3},
	// 2 for {4,5}.
	neighborhoods := [][]int{{1}, {0}, {3}, {2}, {5}, {4}}
	isCore := []bool{true, true, true, true, true, true}

	labels := ExpandClusters(isCore, neighborhoods)
	want := []int{0, 0, 1, 1, 2, 2}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestExpandClusters_Idempotent(t *testing.T) {
	neighborhoods, isCore := randomGeometricCase(200, 0.05, 3, 42)

	first := ExpandClusters(isCore, neighborhoods)
	second := ExpandClusters(isCore, neighborhoods)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical input produced different labels")
	}
}

func TestExpandClusters_RandomGeometricProperties(t *testing.T) {
	for _, seed := range []int64{1, 7, 1234} {
		neighborhoods, isCore := randomGeometricCase(300, 0.04, 4, seed)
		labels := ExpandClusters(isCore, neighborhoods)
		checkClusteringInvariants(t, seed, labels, isCore, neighborhoods)
	}
}

// randomGeometricCase builds neighborhoods for n random points on a unit
// line with the given radius, plus the core mask for minSamples. The
// neighbor relation is symmetric by construction.
func randomGeometricCase(n int, eps float64, minSamples int, seed int64) ([][]int, []bool) {
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()
	}
	neighborhoods := RadiusNeighborhoods(distMatrix1D(xs), n, eps)
	return neighborhoods, CoreSampleMask(neighborhoods, nil, minSamples)
}

// checkClusteringInvariants verifies the structural guarantees of the
// expansion over a symmetric neighbor relation.
func checkClusteringInvariants(t *testing.T, seed int64, labels []int, isCore []bool, neighborhoods [][]int) {
	t.Helper()
	n := len(neighborhoods)

	if len(labels) != n {
		t.Fatalf("seed %d: got %d labels for %d samples", seed, len(labels), n)
	}

	numClusters := 0
	for _, l := range labels {
		if l+1 > numClusters {
			numClusters = l + 1
		}
	}

	for i, l := range labels {
		if l < -1 || l >= numClusters {
			t.Errorf("seed %d: labels[%d] = %d outside [-1, %d)", seed, i, l, numClusters)
		}
		// A core sample is never noise.
		if isCore[i] && l == -1 {
			t.Errorf("seed %d: core sample %d labeled noise", seed, i)
		}
		switch {
		case l == -1:
			// Noise has no core neighbor.
			for _, j := range neighborhoods[i] {
				if isCore[j] {
					t.Errorf("seed %d: noise sample %d has core neighbor %d", seed, i, j)
				}
			}
		case !isCore[i]:
			// A labeled border sample owes its label to some core neighbor.
			found := false
			for _, j := range neighborhoods[i] {
				if isCore[j] && labels[j] == l {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("seed %d: border sample %d (label %d) has no core neighbor with that label", seed, i, l)
			}
		}
	}

	// Density-connected cores share a cluster.
	for i := range neighborhoods {
		if !isCore[i] {
			continue
		}
		for _, j := range neighborhoods[i] {
			if isCore[j] && labels[i] != labels[j] {
				t.Errorf("seed %d: adjacent cores %d and %d in different clusters (%d vs %d)",
					seed, i, j, labels[i], labels[j])
			}
		}
	}

	// Cluster IDs follow the scan order of their seeds: the smallest core
	// index per cluster is strictly increasing with the cluster ID.
	minCore := make([]int, numClusters)
	for c := range minCore {
		minCore[c] = n
	}
	for i, l := range labels {
		if l >= 0 && isCore[i] && i < minCore[l] {
			minCore[l] = i
		}
	}
	if !sort.IntsAreSorted(minCore) {
		t.Errorf("seed %d: cluster seed indices %v not in increasing order", seed, minCore)
	}
}

func TestExpandClusters_PanicOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched isCore length")
		}
	}()
	ExpandClusters([]bool{true}, [][]int{{1}, {0}})
}

func TestExpandClusters_PanicOnNeighborOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range neighbor index")
		}
	}()
	ExpandClusters([]bool{true, true}, [][]int{{5}, {0}})
}
