package domain

// Vocabulary is the ordered set of distinct terms observed across all
// chunks, with a document-frequency count per term. It is built once per
// run and immutable afterwards. Terms are sorted so vector dimensions are
// stable across runs on identical input.
type Vocabulary struct {
	// Terms holds the distinct terms in sorted order.
	Terms []string

	// DocFreq holds, per term index, the number of chunks containing it.
	DocFreq []int
}

// Size returns the number of terms in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.Terms)
}

// Index returns the dimension of the given term, or -1 if absent.
func (v *Vocabulary) Index(term string) int {
	// Terms is sorted; binary search keeps lookups cheap for large corpora.
	lo, hi := 0, len(v.Terms)
	for lo < hi {
		mid := (lo + hi) / 2
		if v.Terms[mid] < term {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(v.Terms) && v.Terms[lo] == term {
		return lo
	}
	return -1
}

// ChunkVector is the TF-IDF representation of one chunk over the shared
// vocabulary. Weights are L2-normalized so cosine similarity reduces to a
// dot product, or all-zero when the chunk has no surviving terms.
type ChunkVector struct {
	// ChunkID links to the chunk this vector represents.
	ChunkID string

	// Weights holds one weight per vocabulary term.
	Weights []float64
}
