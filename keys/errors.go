package keys

import (
	"strconv"
	"strings"
)

// UnknownKeyError reports a textual-decoding rejection: a string was read
// that is not one of the canonical strings of the target enumeration.
// It carries the offending string and the full valid set so the decoder's
// caller can build a complete diagnostic.
type UnknownKeyError struct {
	// Key is the unrecognized string as it appeared in the input.
	Key string
	// Expected lists every canonical string the decoder would have accepted,
	// in declaration order.
	Expected []string
}

// Error renders e.g. `unknown key "purple" (expected one of "red", "green", "blue")`.
func (e *UnknownKeyError) Error() string {
	var b strings.Builder

	b.WriteString("unknown key ")
	b.WriteString(strconv.Quote(e.Key))

	if len(e.Expected) > 0 {
		b.WriteString(" (expected ")
		b.WriteString(ExpectedOneOf(e.Expected))
		b.WriteString(")")
	}

	return b.String()
}

// ExpectedOneOf renders a valid-key list as `one of "red", "green", "blue"`,
// with a comma-space between names and no leading or trailing separator.
func ExpectedOneOf(keys []string) string {
	var b strings.Builder

	b.WriteString("one of ")

	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Quote(k))
	}

	return b.String()
}
