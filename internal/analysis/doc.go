// Package analysis implements the rule-based free-text pipeline: tokenizing
// survey comments, filtering stopwords, classifying sentiment by keyword
// hits, and ranking keyword frequencies.
//
// This is deliberately not a morphological analyzer. Tokens are substring
// splits, stopwords match exactly, and sentiment is a hit count over fixed
// word lists. The behavior is deterministic and must stay that way; the
// dashboard depends on reproducible numbers, not linguistic accuracy.
package analysis
