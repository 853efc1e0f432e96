package vectorizer

// defaultStopwords returns the English stop words filtered out during
// tokenization so cluster names are not dominated by function words.
func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "its", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just", "not",
		"no", "nor", "only", "both", "each", "few", "more", "most",
		"other", "some", "any", "all", "we", "you", "they", "he", "she",
		"i", "me", "my", "our", "your", "their", "his", "her", "them",
		"us", "what", "which", "who", "whom", "when", "where", "why",
		"how", "there", "here", "do", "does", "did", "doing", "have",
		"has", "had", "having", "would", "should", "could", "may",
		"might", "must", "shall", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
