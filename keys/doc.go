// Package keys provides the runtime contract for keyed enumerations:
// closed sets of values where every value is bound to exactly one
// canonical string.
//
// Key capabilities:
//   - Keys interface satisfied by generated enumeration types
//   - Set, an immutable (string, value) registry with linear-scan lookup
//   - UnknownKeyError, the structured rejection raised when decoding an
//     unrecognized string
//
// Generated code (see cmd/keygen) implements the same contract with
// switch-based lookup instead of a registry scan; both forms are
// behaviorally equivalent for valid input.
package keys
