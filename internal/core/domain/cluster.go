package domain

// Cluster is a topical group of chunks produced by the clusterer.
// Centroid and membership are mutually consistent only after the
// clustering loop reaches a terminal state.
type Cluster struct {
	// ID is the cluster index in [0, k).
	ID int

	// Centroid is the mean vector of the member chunk vectors.
	Centroid []float64

	// Members holds the chunk IDs assigned to this cluster.
	Members []string

	// Name is the derived human-readable label.
	Name string
}
