package ticker

import "fmt"

// InvalidSymbolError reports a symbol that violates the HTS constraints.
type InvalidSymbolError struct {
	Symbol string
	Reason string
}

func (errorValue InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid token symbol %q: %s", errorValue.Symbol, errorValue.Reason)
}

func NewInvalidSymbolError(symbol string, reason string) error {
	return InvalidSymbolError{Symbol: symbol, Reason: reason}
}
