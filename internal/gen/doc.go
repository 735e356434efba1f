// Package gen provides deterministic Go code generation for keyed enums.
//
// Generation approach uses text/template + go/format for readable output.
//
// Emitted per enum:
//   - the type and its skip-zero const block (unless the enum is external)
//   - Key/String/IsValid methods (switch-based lookup)
//   - a Parse<Name> function and a <Name>Keys listing
//   - MarshalText/UnmarshalText for textual decoding and map-key use
//
// Identical definitions produce byte-identical output.
package gen
