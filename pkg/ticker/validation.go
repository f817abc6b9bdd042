package ticker

import "strings"

// Validate checks that a symbol fits the HTS constraints: non-empty,
// within MaxSymbolLength, printable ASCII without spaces.
func Validate(symbol string) error {
	trimmed := strings.TrimSpace(symbol)
	if trimmed == "" {
		return NewInvalidSymbolError(symbol, "symbol cannot be empty")
	}
	if trimmed != symbol {
		return NewInvalidSymbolError(symbol, "symbol cannot have surrounding whitespace")
	}
	if len(symbol) > MaxSymbolLength {
		return NewInvalidSymbolError(symbol, "symbol exceeds the 100 character limit")
	}
	for _, character := range symbol {
		if character <= ' ' || character > '~' {
			return NewInvalidSymbolError(symbol, "symbol must be printable ASCII without spaces")
		}
	}
	return nil
}
