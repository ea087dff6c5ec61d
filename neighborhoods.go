package dbscan

// NeighborhoodProvider produces, for every sample, the indices of the
// samples within eps of it, excluding the sample itself. Implementations
// are typically spatial indexes (KD-trees, ball trees, brute-force
// searchers) living outside this package. The returned slices must be
// fully materialized and must not be mutated while clustering runs.
type NeighborhoodProvider interface {
	RadiusNeighborhoods(eps float64) ([][]int, error)
}

// RadiusNeighborhoods extracts eps-neighborhoods from a precomputed dense
// distance matrix. distMatrix is flat n*n row-major. neighborhoods[i]
// contains every j != i with distMatrix[i*n+j] <= eps, in ascending
// order of j. The boundary is inclusive.
func RadiusNeighborhoods(distMatrix []float64, n int, eps float64) [][]int {
	neighborhoods := make([][]int, n)
	for i := 0; i < n; i++ {
		neighborhoods[i] = rowRadiusNeighbors(distMatrix, n, i, eps)
	}
	return neighborhoods
}

// rowRadiusNeighbors scans row i of the matrix for entries within eps,
// skipping the diagonal.
func rowRadiusNeighbors(distMatrix []float64, n, i int, eps float64) []int {
	row := distMatrix[i*n : (i+1)*n]
	neighbors := make([]int, 0, 8)
	for j, d := range row {
		if j != i && d <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
