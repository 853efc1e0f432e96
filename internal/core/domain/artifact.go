package domain

// ChunkAssignment maps one chunk to its cluster in the persisted artifact.
type ChunkAssignment struct {
	// ID is the stable chunk identifier.
	ID string `json:"id"`

	// Cluster is the assigned cluster index.
	Cluster int `json:"cluster"`
}

// ClusterSummary describes one cluster in the persisted artifact.
type ClusterSummary struct {
	// ID is the cluster index in [0, k).
	ID int `json:"id"`

	// Name is the derived (or overridden) label.
	Name string `json:"name"`

	// ChunkCount is the number of member chunks. Always at least 1.
	ChunkCount int `json:"chunkCount"`
}

// Artifact is the analysis output consumed by the visualization layer.
// It is created once per run and written atomically at the end; no
// partial state is ever persisted.
type Artifact struct {
	// Title is the display title for the corpus.
	Title string `json:"title"`

	// Description is a short description for the corpus.
	Description string `json:"description"`

	// Similarity is the rendering threshold for drawing chunk links.
	Similarity float64 `json:"similarity"`

	// CharsPerPixel controls chunk sizing in the rendered chart.
	CharsPerPixel int `json:"charsPerPixel"`

	// Chunks lists every chunk with its cluster, in corpus order.
	Chunks []ChunkAssignment `json:"chunks"`

	// Clusters lists every cluster ordered by ID.
	Clusters []ClusterSummary `json:"clusters"`
}
