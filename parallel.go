package dbscan

import "sync"

// RadiusNeighborhoodsParallel extracts eps-neighborhoods from a dense
// distance matrix using multiple goroutines. Each worker handles a
// contiguous range of rows; since row ranges don't overlap, no
// synchronization is needed for writes. Falls back to sequential
// RadiusNeighborhoods if numWorkers <= 1.
//
// The result is identical to RadiusNeighborhoods.
func RadiusNeighborhoodsParallel(distMatrix []float64, n int, eps float64, numWorkers int) [][]int {
	if numWorkers <= 1 || n <= 1 {
		return RadiusNeighborhoods(distMatrix, n, eps)
	}

	neighborhoods := make([][]int, n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				neighborhoods[i] = rowRadiusNeighbors(distMatrix, n, i, eps)
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return neighborhoods
}

// NeighborhoodWeightsParallel computes total neighborhood weights using
// multiple goroutines. Each worker handles a contiguous range of samples
// independently. Falls back to sequential NeighborhoodWeights if
// numWorkers <= 1.
//
// The result is bitwise identical to NeighborhoodWeights: each sample's
// total is accumulated in the same order either way.
func NeighborhoodWeightsParallel(neighborhoods [][]int, sampleWeight []float64, numWorkers int) []float64 {
	n := len(neighborhoods)
	if numWorkers <= 1 || n <= 1 {
		return NeighborhoodWeights(neighborhoods, sampleWeight)
	}
	checkSampleWeight(neighborhoods, sampleWeight)

	weights := make([]float64, n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				weights[i] = neighborhoodWeight(i, neighborhoods[i], sampleWeight)
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return weights
}
