package schema

import "keys-generator/internal/common"

// DefFile represents the root of a YAML enum definition file.
// This is the authoritative, human-authored enumeration source.
type DefFile struct {
	// Version of the definition schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the name of the Go package generated code belongs to.
	Package string `yaml:"package"`

	// Enums is the list of keyed enumerations to generate.
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef defines one keyed enumeration: a closed set of variants, each
// bound to exactly one canonical string.
type EnumDef struct {
	// Name is the generated type name (e.g., "Color").
	Name string `yaml:"name"`

	// Output is the generated filename. Defaults to snake_case(Name) + "_keys.go".
	Output string `yaml:"output,omitempty"`

	// External marks an enum whose type and const block already exist in
	// source; generation emits methods only. Set by scan mode (see
	// internal/analyze), never by definition-file authors.
	External bool `yaml:"-"`

	// StringBacked marks an external enum whose underlying type is a string
	// rather than an integer. Generated enums are always integer-backed.
	StringBacked bool `yaml:"-"`

	// Values is the ordered variant list. Order is preserved in the
	// generated const block and in key listings.
	Values []ValueDef `yaml:"values"`
}

// ValueDef binds one variant identifier to its canonical string.
type ValueDef struct {
	// Name is the variant identifier (e.g., "Red"). The generated const is
	// prefixed with the enum name ("ColorRed").
	Name string `yaml:"name"`

	// Key is the canonical string (e.g., "red"). Defaults to snake_case(Name).
	Key string `yaml:"key,omitempty"`
}

// Keys returns the canonical strings of the enum in declared order.
func (e *EnumDef) Keys() []string {
	res := make([]string, len(e.Values))
	for i, v := range e.Values {
		res[i] = v.Key
	}

	return res
}

// ConstName returns the const identifier for the value: "ColorRed" for enum
// Color and variant Red. External enums keep their declared const names.
func (e *EnumDef) ConstName(v ValueDef) string {
	if e.External {
		return v.Name
	}

	return e.Name + v.Name
}

// DefaultOutput returns the default generated filename for the enum.
func (e *EnumDef) DefaultOutput() string {
	return common.ToSnake(e.Name) + "_keys.go"
}
