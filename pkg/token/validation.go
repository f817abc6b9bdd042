package token

import (
	"strings"

	"github.com/ledgerline/htskit-go/pkg/ticker"
)

// ValidateName checks the HTS token name constraints.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewInvalidNameError(name, "name cannot be empty")
	}
	if len(trimmed) > MaxNameLength {
		return NewInvalidNameError(name, "name exceeds the 100 character limit")
	}
	return nil
}

// ValidateDecimals bounds the precision of a fungible token.
func ValidateDecimals(decimals uint) error {
	if decimals > MaxDecimals {
		return NewInvalidDecimalsError(decimals)
	}
	return nil
}

// ResolveSymbol returns the explicit symbol when given, otherwise derives
// one from the token name. The result is validated either way.
func ResolveSymbol(name string, symbol string) (string, error) {
	resolved := strings.TrimSpace(symbol)
	if resolved == "" {
		resolved = ticker.Generate(name)
	}
	if err := ticker.Validate(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}
