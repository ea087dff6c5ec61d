// Package dbscan implements Density-Based Spatial Clustering of
// Applications with Noise (DBSCAN).
//
// DBSCAN finds core samples of high density and expands clusters from
// them through chained density-reachability. It works well for data
// containing clusters of similar density and robustly identifies noise
// points, which receive the label -1.
//
// Basic usage with a precomputed distance matrix:
//
//	cfg := dbscan.DefaultConfig()
//	cfg.Eps = 0.3
//	cfg.MinSamples = 10
//	result, err := dbscan.ClusterPrecomputed(distMatrix, n, cfg)
//	// result.Labels[i] is the cluster ID for point i (-1 = noise)
//	// result.CoreSampleIndices lists the density cores in ascending order
//
// This implementation bulk-computes all neighborhood queries before
// clustering begins, which raises memory complexity to O(n·d) where d is
// the average neighborhood size, in exchange for a simple and fast
// expansion loop.
//
// # Neighborhood sources
//
// The spatial index that answers radius queries is an external
// collaborator, not part of this package. Four entry points cover the
// common ways of supplying neighborhoods:
//
//	dbscan.ClusterPrecomputed(distMatrix, n, cfg)   // dense n×n distances
//	dbscan.ClusterSparsePrecomputed(sparse, cfg)    // CSR distances
//	dbscan.ClusterNeighborhoods(neighborhoods, cfg) // precomputed neighbor lists
//	dbscan.ClusterProvider(index, cfg)              // external spatial index
//
// # Sample weights
//
// Config.SampleWeight attaches a weight to each sample, such that a
// sample whose total neighborhood weight reaches MinSamples is a core
// sample. Weights may be negative, which lets a downweighted sample
// inhibit its eps-neighbors from becoming cores.
package dbscan
