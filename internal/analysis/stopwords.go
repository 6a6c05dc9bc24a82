package analysis

// Stopwords is an exact-match set of non-content tokens. Matching is
// case-sensitive and whole-token only: no suffix stripping. Trimming tokens
// that merely end in a stopword was considered and rejected as unsafe, since
// partial matching removes valid words. Inflected forms therefore survive
// filtering; that residual noise is accepted.
type Stopwords map[string]struct{}

// NewStopwords builds a stopword set from a word list.
func NewStopwords(words []string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// IsContent reports whether tok survives filtering, i.e. is not a stopword.
func (s Stopwords) IsContent(tok string) bool {
	_, stop := s[tok]
	return !stop
}
