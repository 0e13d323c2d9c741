package tokenizer

import (
	"strings"

	"isbnsplit/pkg/model"
)

// Delimiters lists every character accepted between ISBN groups.
const Delimiters = " !#$%&*+,-./:;@\\|"

func IsDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}

// Split breaks s into at most model.GroupCount groups. Runs of delimiters
// count as one separator, empty tokens are dropped and anything after the
// fifth token is ignored. Slots without a token stay absent.
func Split(s string) model.GroupSet {
	var groups model.GroupSet

	n := 0
	start := -1
	for i, r := range s {
		if IsDelimiter(r) {
			if start >= 0 {
				groups[n] = model.Of(s[start:i])
				n++
				start = -1
				if n == model.GroupCount {
					return groups
				}
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		groups[n] = model.Of(s[start:])
	}

	return groups
}
