package domain

// KeywordEntry is one row of a keyword frequency table. Ratio is the share
// of Count relative to all retained token occurrences in the analyzed
// collection, as a percentage rounded to one decimal place.
type KeywordEntry struct {
	Word  string  `json:"word"`
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// SentimentBucket groups the texts classified into one sentiment class,
// carrying the display label and chart color the dashboard expects.
type SentimentBucket struct {
	Name  string   `json:"name"`
	Value int      `json:"value"`
	Fill  string   `json:"fill"`
	Texts []string `json:"texts,omitempty"`
}
