// Package diagnostic provides structured warnings and errors for the
// keyed-enum generator.
//
// Key capabilities:
//   - Duplicate key / duplicate variant errors
//   - Near-duplicate key warnings (likely typos) with suggestions
//   - Aggregation of definition-file problems into a single error
package diagnostic
