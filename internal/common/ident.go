package common

import (
	"strings"
	"unicode"
)

// ToSnake converts a CamelCase identifier to snake_case.
// "DarkRed" -> "dark_red", "HTTPStatus" -> "http_status".
func ToSnake(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			startsWord := i > 0 && !unicode.IsUpper(runes[i-1])
			endsAcronym := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])

			if startsWord || endsAcronym {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
