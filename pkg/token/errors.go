package token

import "fmt"

type TokenError struct {
	Message string
}

func (errorValue TokenError) Error() string {
	return errorValue.Message
}

type InvalidNameError struct {
	TokenError
	Name string
}

func NewInvalidNameError(name string, reason string) error {
	return InvalidNameError{
		TokenError: TokenError{Message: fmt.Sprintf("invalid token name %q: %s", name, reason)},
		Name:       name,
	}
}

type InvalidAmountError struct {
	TokenError
	Amount int64
}

func NewInvalidAmountError(amount int64) error {
	return InvalidAmountError{
		TokenError: TokenError{Message: fmt.Sprintf("token amount must be positive, got %d", amount)},
		Amount:     amount,
	}
}

type InvalidDecimalsError struct {
	TokenError
	Decimals uint
}

func NewInvalidDecimalsError(decimals uint) error {
	return InvalidDecimalsError{
		TokenError: TokenError{Message: fmt.Sprintf("token decimals must be at most %d, got %d", MaxDecimals, decimals)},
		Decimals:   decimals,
	}
}

type NotAssociatedError struct {
	TokenError
	AccountID string
	TokenID   string
}

func NewNotAssociatedError(accountID string, tokenID string) error {
	return NotAssociatedError{
		TokenError: TokenError{Message: fmt.Sprintf("account %s is not associated with token %s", accountID, tokenID)},
		AccountID:  accountID,
		TokenID:    tokenID,
	}
}
