// Package dedupe provides shared singleflight groups used to collapse
// concurrent identical reads. Only one build or query runs per key while
// other callers wait for its result.
package dedupe

import "golang.org/x/sync/singleflight"

// ContentGroup deduplicates the first build of the codex document.
var ContentGroup singleflight.Group

// HistoryGroup deduplicates run history reads keyed by
// "history:<save id>:<limit>".
var HistoryGroup singleflight.Group
