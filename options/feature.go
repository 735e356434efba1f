package options

import (
	"strings"

	"keys-generator/keys"
)

// FeatureEnum selects which optional method groups the generator emits.
// Key, String, and IsValid are the contract itself and are always emitted.
type FeatureEnum int

const (
	FeatureParse   FeatureEnum = 1 << iota // Parse<Name> constructor (string -> variant)
	FeatureKeyList                         // <Name>Keys listing of all canonical strings
	FeatureText                            // MarshalText/UnmarshalText (implies parse and keylist)

	FeatureAll  FeatureEnum = (1 << iota) - 1 // all features combined
	FeatureNone FeatureEnum = 0               // no optional features selected
)

// featureSet is the canonical name registry for feature flags. The generator
// of keyed enums names its own flags with a keyed set.
var featureSet = keys.NewSet(
	keys.Pair[FeatureEnum]{Key: "parse", Value: FeatureParse},
	keys.Pair[FeatureEnum]{Key: "keylist", Value: FeatureKeyList},
	keys.Pair[FeatureEnum]{Key: "text", Value: FeatureText},
	keys.Pair[FeatureEnum]{Key: "all", Value: FeatureAll},
	keys.Pair[FeatureEnum]{Key: "none", Value: FeatureNone},
)

// Has reports whether all bits of other are set in f.
func (f FeatureEnum) Has(other FeatureEnum) bool {
	return f&other == other
}

// Normalize resolves feature implications: textual decoding needs the parse
// constructor and the key listing, so FeatureText pulls both in.
func (f FeatureEnum) Normalize() FeatureEnum {
	if f.Has(FeatureText) {
		f |= FeatureParse | FeatureKeyList
	}

	return f
}

// ParseFeatures parses a comma-separated feature list such as "parse,text".
// Unrecognized names fail with a keys.UnknownKeyError listing the accepted
// feature names.
func ParseFeatures(s string) (FeatureEnum, error) {
	res := FeatureNone

	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		f, ok := featureSet.FromKey(name)
		if !ok {
			return FeatureNone, &keys.UnknownKeyError{Key: name, Expected: featureSet.Keys()}
		}

		res |= f
	}

	return res.Normalize(), nil
}

// FeatureNames returns the accepted feature names in declared order.
func FeatureNames() []string {
	return featureSet.Keys()
}
