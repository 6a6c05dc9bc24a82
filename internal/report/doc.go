// Package report turns raw survey records into chart-ready summaries under
// department/rank filters. Every function here is pure: reports are
// recomputed from the full record set on each request, with no caching or
// incremental state between filter changes.
package report
