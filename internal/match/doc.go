// Package match provides name normalization and Levenshtein distance
// calculation for canonical-key similarity checks.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: finds the closest candidate for a misspelled key
package match
