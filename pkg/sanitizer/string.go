package sanitizer

import "strings"

const Whitespace = " \n\r\t"

func isWhitespace(r rune) bool {
	return strings.ContainsRune(Whitespace, r)
}

// StripWhitespace returns s without any space, tab, CR or LF characters.
func StripWhitespace(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		if isWhitespace(r) {
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
