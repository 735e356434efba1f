package schema

import (
	"fmt"
	"strings"

	"keys-generator/internal/common"
	"keys-generator/internal/diagnostic"
	"keys-generator/internal/match"
)

// NearDuplicateThreshold is the similarity score above which two canonical
// keys within one enum are flagged as likely typos of each other.
const NearDuplicateThreshold = 0.8

// Validate validates a definition file.
//
// Duplicate variant names and duplicate canonical keys are rejected here,
// at definition time, so the generated lookup never has to arbitrate a
// many-to-one mapping. The runtime registry (keys.Set) deliberately stays
// permissive; this is the single validation point.
func Validate(df *DefFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError("definition_is_nil", "definition file is nil", "", "")
		return res
	}

	if !isPackageName(df.Package) {
		res.AddError("bad_package_name",
			fmt.Sprintf("%q is not a valid package name", df.Package), "", "")
	}

	if common.IsEmpty(df.Enums) {
		res.AddError("no_enums", "definition file declares no enums", "", "")
	}

	seenEnums := map[string]struct{}{}
	seenOutputs := map[string]string{}

	for i := range df.Enums {
		e := &df.Enums[i]

		if !common.IsExportedIdent(e.Name) {
			res.AddError("bad_enum_name",
				fmt.Sprintf("enum name %q is not a valid exported identifier", e.Name), e.Name, "")
			continue
		}

		if _, ok := seenEnums[e.Name]; ok {
			res.AddError("duplicate_enum",
				fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "")
			continue
		}

		seenEnums[e.Name] = struct{}{}

		if prev, ok := seenOutputs[e.Output]; ok {
			res.AddError("output_collision",
				fmt.Sprintf("enums %q and %q both generate into %s", prev, e.Name, e.Output), e.Name, "")
		} else {
			seenOutputs[e.Output] = e.Name
		}

		res.Merge(validateValues(e))
	}

	return res
}

// validateValues checks the variant list of a single enum.
func validateValues(e *EnumDef) diagnostic.Diagnostics {
	res := diagnostic.Diagnostics{}

	if common.IsEmpty(e.Values) {
		res.AddError("no_values",
			fmt.Sprintf("enum %q declares no values", e.Name), e.Name, "")
		return res
	}

	if len(e.Values) == 1 {
		res.AddInfo("single_value",
			fmt.Sprintf("enum %q declares a single value", e.Name), e.Name, e.Values[0].Name)
	}

	seenNames := map[string]struct{}{}
	seenKeys := map[string]string{}

	for _, v := range e.Values {
		if !common.IsIdent(v.Name) {
			res.AddError("bad_value_name",
				fmt.Sprintf("variant name %q is not a valid identifier", v.Name), e.Name, v.Name)
			continue
		}

		if _, ok := seenNames[v.Name]; ok {
			res.AddError("duplicate_value",
				fmt.Sprintf("duplicate variant %q", v.Name), e.Name, v.Name)
			continue
		}

		seenNames[v.Name] = struct{}{}

		if v.Key == "" {
			res.AddError("empty_key",
				fmt.Sprintf("variant %q has an empty canonical key", v.Name), e.Name, v.Name)
			continue
		}

		if prev, ok := seenKeys[v.Key]; ok {
			res.AddError("duplicate_key",
				fmt.Sprintf("variants %q and %q share canonical key %q", prev, v.Name, v.Key), e.Name, v.Key)
			continue
		}

		warnNearDuplicates(e.Name, v, seenKeys, &res)

		seenKeys[v.Key] = v.Name
	}

	return res
}

// warnNearDuplicates flags keys that normalize to near-identical strings;
// those are almost always typos rather than intentional distinct values.
func warnNearDuplicates(enum string, v ValueDef, seenKeys map[string]string, res *diagnostic.Diagnostics) {
	for prevKey, prevName := range seenKeys {
		if match.KeySimilarity(v.Key, prevKey) < NearDuplicateThreshold {
			continue
		}

		res.Warnings = append(res.Warnings, diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     "near_duplicate_key",
			Message: fmt.Sprintf("key %q of variant %q is suspiciously close to key %q of variant %q",
				v.Key, v.Name, prevKey, prevName),
			Enum:        enum,
			Value:       v.Key,
			Suggestions: []string{prevKey},
		})
	}
}

// isPackageName reports whether s is usable as a Go package name.
func isPackageName(s string) bool {
	return common.IsIdent(s) && s == strings.ToLower(s)
}
