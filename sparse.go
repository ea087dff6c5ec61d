package dbscan

import "fmt"

// SparseDistanceMatrix is a square distance matrix in compressed sparse
// row (CSR) form. Row i's stored entries live in
// Indices[Indptr[i]:Indptr[i+1]] and Data[Indptr[i]:Indptr[i+1]].
//
// Only stored entries are considered when extracting neighborhoods: an
// absent entry means "farther than any radius of interest", never
// "distance zero". A stored zero is a genuine zero distance. Diagonal
// entries, stored or not, are always skipped.
type SparseDistanceMatrix struct {
	// N is the number of samples; the matrix is N×N.
	N int

	// Indptr has length N+1, starts at 0, is non-decreasing, and ends at
	// len(Indices).
	Indptr []int

	// Indices holds the column index of each stored entry.
	Indices []int

	// Data holds the distance of each stored entry, parallel to Indices.
	Data []float64
}

// RadiusNeighborhoods returns, for each row, the stored column indices
// whose distance is <= eps, excluding the diagonal. It validates the CSR
// structure first, so SparseDistanceMatrix satisfies
// [NeighborhoodProvider].
func (d *SparseDistanceMatrix) RadiusNeighborhoods(eps float64) ([][]int, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	neighborhoods := make([][]int, d.N)
	for i := 0; i < d.N; i++ {
		start, end := d.Indptr[i], d.Indptr[i+1]
		neighbors := make([]int, 0, end-start)
		for k := start; k < end; k++ {
			if j := d.Indices[k]; j != i && d.Data[k] <= eps {
				neighbors = append(neighbors, j)
			}
		}
		neighborhoods[i] = neighbors
	}
	return neighborhoods, nil
}

// validate checks the CSR invariants and returns a descriptive error on
// the first violation.
func (d *SparseDistanceMatrix) validate() error {
	if d.N < 0 {
		return fmt.Errorf("dbscan: sparse matrix N must be >= 0, got %d", d.N)
	}
	if len(d.Indptr) != d.N+1 {
		return fmt.Errorf("dbscan: sparse Indptr length %d, want N+1 = %d", len(d.Indptr), d.N+1)
	}
	if len(d.Indices) != len(d.Data) {
		return fmt.Errorf("dbscan: sparse Indices length %d does not match Data length %d",
			len(d.Indices), len(d.Data))
	}
	if d.Indptr[0] != 0 {
		return fmt.Errorf("dbscan: sparse Indptr must start at 0, got %d", d.Indptr[0])
	}
	if d.Indptr[d.N] != len(d.Indices) {
		return fmt.Errorf("dbscan: sparse Indptr must end at len(Indices) = %d, got %d",
			len(d.Indices), d.Indptr[d.N])
	}
	for i := 0; i < d.N; i++ {
		if d.Indptr[i+1] < d.Indptr[i] {
			return fmt.Errorf("dbscan: sparse Indptr must be non-decreasing, Indptr[%d] = %d < Indptr[%d] = %d",
				i+1, d.Indptr[i+1], i, d.Indptr[i])
		}
	}
	for k, j := range d.Indices {
		if j < 0 || j >= d.N {
			return fmt.Errorf("dbscan: sparse column index %d at entry %d out of range [0, %d)", j, k, d.N)
		}
	}
	return nil
}
