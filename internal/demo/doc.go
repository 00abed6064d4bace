// Package demo orchestrates the demonstration stages: named-field record
// construction, call-site-tagged logging, in-place sequence removal with
// the intermediate stale-tail state made visible, and word deduplication.
// All stage output goes to an injected writer so the exact lines are
// testable.
package demo
