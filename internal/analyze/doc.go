// Package analyze provides scan-mode enum discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// keyed-enum declarations that already exist in source: a named int or
// string type together with its const block. Canonical strings come from
// the const values (string-backed enums) or from the const line comments
// (int-backed enums, the stringer -linecomment convention).
//
// The result is the same schema.DefFile model the YAML loader produces,
// so both input modes feed one generation pipeline.
package analyze
