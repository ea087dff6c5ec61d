package dbscan

import (
	"fmt"
	"runtime"
)

// Config controls DBSCAN clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Eps is the neighborhood radius: the maximum distance between two
	// samples for one to be considered in the neighborhood of the other.
	// The boundary is inclusive. Must be > 0. Default: 0.5.
	Eps float64

	// MinSamples is the number of samples (or total weight) in a
	// neighborhood for a point to be considered a core point. This
	// includes the point itself. Must be >= 1. Default: 5.
	MinSamples int

	// SampleWeight optionally weights each sample, such that a sample
	// with a weight of at least MinSamples is by itself a core sample,
	// and a sample with negative weight may inhibit its eps-neighbors
	// from being core. Weights are absolute. nil means a uniform weight
	// of 1. When non-nil, the length must equal the number of samples.
	SampleWeight []float64

	// Workers controls the number of goroutines for the parallelizable
	// stages (neighborhood extraction and neighborhood weights). The
	// cluster expansion itself is always sequential. 0 means use
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// Result contains the output of DBSCAN clustering.
type Result struct {
	// CoreSampleIndices lists the indices of the core samples in
	// ascending order.
	CoreSampleIndices []int

	// Labels assigns each point to a cluster (0-indexed cluster ID) or -1
	// for noise (points not assigned to any cluster).
	Labels []int

	// NumClusters is the number of clusters found. Labels take values in
	// [-1, NumClusters).
	NumClusters int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Eps:        0.5,
		MinSamples: 5,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if !(cfg.Eps > 0) {
		return fmt.Errorf("dbscan: Eps must be > 0, got %v", cfg.Eps)
	}
	if cfg.MinSamples < 1 {
		return fmt.Errorf("dbscan: MinSamples must be >= 1, got %d", cfg.MinSamples)
	}
	return nil
}

// validateSampleWeight checks SampleWeight against the sample count n.
// Runs separately from validateConfig because n is not known until the
// neighborhood source has been inspected.
func validateSampleWeight(cfg *Config, n int) error {
	if cfg.SampleWeight != nil && len(cfg.SampleWeight) != n {
		return fmt.Errorf("dbscan: SampleWeight length %d does not match %d samples",
			len(cfg.SampleWeight), n)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// emptyResult returns a Result for an empty dataset. All slices are
// non-nil but empty.
func emptyResult() *Result {
	return &Result{
		CoreSampleIndices: []int{},
		Labels:            []int{},
	}
}

// ClusterNeighborhoods performs DBSCAN clustering over precomputed
// eps-neighborhoods. neighborhoods[i] must hold the indices of the
// samples within Eps of sample i, excluding i itself, fully materialized
// before the call; the slices are only read, never modified. Config.Eps
// is validated but otherwise unused on this path, since the neighborhoods
// already embody the radius.
func ClusterNeighborhoods(neighborhoods [][]int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(neighborhoods)
	if err := validateSampleWeight(&cfg, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return emptyResult(), nil
	}

	return clusterFromNeighborhoods(neighborhoods, cfg), nil
}

// ClusterPrecomputed performs DBSCAN on a precomputed distance matrix.
// distMatrix is a flat []float64 of length n*n in row-major order, where
// distMatrix[i*n+j] is the distance between points i and j.
func ClusterPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("dbscan: distMatrix length %d does not match n*n = %d (n=%d)",
			len(distMatrix), n*n, n)
	}
	if err := validateSampleWeight(&cfg, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return emptyResult(), nil
	}

	neighborhoods := RadiusNeighborhoodsParallel(distMatrix, n, cfg.Eps, cfg.Workers)
	return clusterFromNeighborhoods(neighborhoods, cfg), nil
}

// ClusterSparsePrecomputed performs DBSCAN on a precomputed sparse
// distance matrix in CSR form. Only stored entries are considered as
// neighbor candidates; see [SparseDistanceMatrix].
func ClusterSparsePrecomputed(d *SparseDistanceMatrix, cfg Config) (*Result, error) {
	if d == nil {
		return nil, fmt.Errorf("dbscan: nil SparseDistanceMatrix")
	}
	return ClusterProvider(d, cfg)
}

// ClusterProvider performs DBSCAN over neighborhoods produced by an
// external spatial index. The provider is queried exactly once, with
// Config.Eps, and its result must be fully materialized before expansion
// starts; ClusterProvider does not retain it after returning.
func ClusterProvider(p NeighborhoodProvider, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("dbscan: nil NeighborhoodProvider")
	}

	neighborhoods, err := p.RadiusNeighborhoods(cfg.Eps)
	if err != nil {
		return nil, fmt.Errorf("dbscan: neighborhood provider: %w", err)
	}

	n := len(neighborhoods)
	if err := validateSampleWeight(&cfg, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return emptyResult(), nil
	}

	return clusterFromNeighborhoods(neighborhoods, cfg), nil
}

// clusterFromNeighborhoods runs the pipeline from materialized
// neighborhoods onward (weights → core mask → expansion) and assembles
// the Result. The config must already be validated against the
// neighborhood count.
func clusterFromNeighborhoods(neighborhoods [][]int, cfg Config) *Result {
	weights := NeighborhoodWeightsParallel(neighborhoods, cfg.SampleWeight, cfg.Workers)
	isCore := coreMaskFromWeights(weights, cfg.MinSamples)
	labels := ExpandClusters(isCore, neighborhoods)

	coreIndices := make([]int, 0, len(isCore))
	for i, core := range isCore {
		if core {
			coreIndices = append(coreIndices, i)
		}
	}

	// Cluster IDs are dense, so the maximum label determines the count.
	numClusters := 0
	for _, l := range labels {
		if l+1 > numClusters {
			numClusters = l + 1
		}
	}

	return &Result{
		CoreSampleIndices: coreIndices,
		Labels:            labels,
		NumClusters:       numClusters,
	}
}
