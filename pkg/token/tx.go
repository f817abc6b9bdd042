package token

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildTokenCreateTx builds an unsigned fungible token create transaction.
func BuildTokenCreateTx(params CreateTxParams) (*hedera.TokenCreateTransaction, error) {
	if err := ValidateName(params.Name); err != nil {
		return nil, err
	}
	if err := ValidateDecimals(params.Decimals); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Symbol) == "" {
		return nil, fmt.Errorf("token symbol is required")
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(strings.TrimSpace(params.Name)).
		SetTokenSymbol(params.Symbol).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetDecimals(params.Decimals).
		SetInitialSupply(params.InitialSupply).
		SetTreasuryAccountID(params.Treasury)

	if params.AdminKey != nil {
		transaction.SetAdminKey(params.AdminKey)
	}
	if params.SupplyKey != nil {
		transaction.SetSupplyKey(params.SupplyKey)
	}
	if trimmed := strings.TrimSpace(params.Memo); trimmed != "" {
		transaction.SetTokenMemo(trimmed)
	}

	return transaction, nil
}

// BuildTokenMintTx builds an unsigned supply mint transaction.
func BuildTokenMintTx(params MintTxParams) (*hedera.TokenMintTransaction, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	if params.Amount == 0 {
		return nil, NewInvalidAmountError(0)
	}

	transaction := hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetAmount(params.Amount)

	if trimmed := strings.TrimSpace(params.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	return transaction, nil
}

// BuildTokenAssociateTx builds an unsigned association transaction for one
// or more tokens. The holding account must sign before submission.
func BuildTokenAssociateTx(params AssociateTxParams) (*hedera.TokenAssociateTransaction, error) {
	accountID, err := parseAccountID(params.AccountID)
	if err != nil {
		return nil, err
	}
	if len(params.TokenIDs) == 0 {
		return nil, fmt.Errorf("at least one token ID is required")
	}

	tokenIDs := make([]hedera.TokenID, 0, len(params.TokenIDs))
	for _, raw := range params.TokenIDs {
		tokenID, parseErr := parseTokenID(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		tokenIDs = append(tokenIDs, tokenID)
	}

	transaction := hedera.NewTokenAssociateTransaction().
		SetAccountID(accountID).
		SetTokenIDs(tokenIDs...)

	if trimmed := strings.TrimSpace(params.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	return transaction, nil
}

// BuildTokenTransferTx builds an unsigned transfer moving Amount token
// units from one account to another. The sending account must sign.
func BuildTokenTransferTx(params TransferTxParams) (*hedera.TransferTransaction, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	fromID, err := parseAccountID(params.From)
	if err != nil {
		return nil, err
	}
	toID, err := parseAccountID(params.To)
	if err != nil {
		return nil, err
	}
	if params.Amount <= 0 {
		return nil, NewInvalidAmountError(params.Amount)
	}

	transaction := hedera.NewTransferTransaction().
		AddTokenTransfer(tokenID, fromID, -params.Amount).
		AddTokenTransfer(tokenID, toID, params.Amount)

	if trimmed := strings.TrimSpace(params.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	return transaction, nil
}

func parseTokenID(raw string) (hedera.TokenID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.TokenID{}, fmt.Errorf("token ID is required")
	}
	tokenID, err := hedera.TokenIDFromString(trimmed)
	if err != nil {
		return hedera.TokenID{}, fmt.Errorf("invalid token ID: %w", err)
	}
	return tokenID, nil
}

func parseAccountID(raw string) (hedera.AccountID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return hedera.AccountID{}, fmt.Errorf("account ID is required")
	}
	accountID, err := hedera.AccountIDFromString(trimmed)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("invalid account ID: %w", err)
	}
	return accountID, nil
}
