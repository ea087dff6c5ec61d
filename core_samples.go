package dbscan

import "fmt"

// NeighborhoodWeights computes the total neighborhood weight of every
// sample: the sample's own weight plus the weights of its eps-neighbors.
// With a nil sampleWeight every sample weighs 1, so the total reduces to
// the neighbor count plus one. Negative weights are allowed and subtract
// from their neighbors' totals.
//
// Panics if sampleWeight is non-nil and its length does not match the
// number of neighborhoods; callers validate user-supplied weights before
// reaching this stage.
func NeighborhoodWeights(neighborhoods [][]int, sampleWeight []float64) []float64 {
	checkSampleWeight(neighborhoods, sampleWeight)

	weights := make([]float64, len(neighborhoods))
	for i, neighbors := range neighborhoods {
		weights[i] = neighborhoodWeight(i, neighbors, sampleWeight)
	}
	return weights
}

// neighborhoodWeight computes the total weight of one sample's
// neighborhood, including the sample itself.
func neighborhoodWeight(i int, neighbors []int, sampleWeight []float64) float64 {
	if sampleWeight == nil {
		return float64(len(neighbors) + 1)
	}
	total := sampleWeight[i]
	for _, j := range neighbors {
		total += sampleWeight[j]
	}
	return total
}

// CoreSampleMask reports, per sample, whether it is a density core: a
// sample whose total neighborhood weight (see [NeighborhoodWeights])
// reaches minSamples. Pure function of its inputs; the neighborhoods are
// only read.
func CoreSampleMask(neighborhoods [][]int, sampleWeight []float64, minSamples int) []bool {
	return coreMaskFromWeights(NeighborhoodWeights(neighborhoods, sampleWeight), minSamples)
}

// coreMaskFromWeights thresholds precomputed neighborhood weights into a
// core mask.
func coreMaskFromWeights(weights []float64, minSamples int) []bool {
	isCore := make([]bool, len(weights))
	threshold := float64(minSamples)
	for i, w := range weights {
		isCore[i] = w >= threshold
	}
	return isCore
}

func checkSampleWeight(neighborhoods [][]int, sampleWeight []float64) {
	if sampleWeight != nil && len(sampleWeight) != len(neighborhoods) {
		panic(fmt.Sprintf("dbscan: sampleWeight length %d does not match %d neighborhoods",
			len(sampleWeight), len(neighborhoods)))
	}
}
