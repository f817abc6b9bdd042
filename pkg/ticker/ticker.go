package ticker

import (
	"strings"
	"unicode"
)

const (
	// MinLength pads generated symbols up to the conventional three
	// character ticker width.
	MinLength = 3

	// MaxSymbolLength is the HTS token symbol limit.
	MaxSymbolLength = 100

	padCharacter = 'X'
)

// Generate derives a ticker symbol from a human-readable token name. Each
// space-separated word contributes its first character followed by any
// camel-case humps found inside the word; the result is padded with 'X' to
// MinLength and upper-cased. Deterministic and pure.
//
//	Generate("Solar Credits")  == "SCX"
//	Generate("MyToken")        == "MTX"
//	Generate("gold ore spark") == "GOS"
func Generate(name string) string {
	var builder strings.Builder

	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		builder.WriteRune(runes[0])
		for _, character := range runes[1:] {
			if unicode.IsUpper(character) {
				builder.WriteRune(character)
			}
		}
	}

	symbol := builder.String()
	for len([]rune(symbol)) < MinLength {
		symbol += string(padCharacter)
	}

	return strings.ToUpper(symbol)
}
