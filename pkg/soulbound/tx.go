package soulbound

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/token"
)

// BuildBadgeCreateTx builds an unsigned badge collection create
// transaction: an NFT whose accounts start frozen, with freeze, wipe, and
// supply keys but no admin key, so the token itself is immutable.
func BuildBadgeCreateTx(params BadgeCreateTxParams) (*hedera.TokenCreateTransaction, error) {
	if err := token.ValidateName(params.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Symbol) == "" {
		return nil, fmt.Errorf("badge symbol is required")
	}
	if params.FreezeKey == nil {
		return nil, fmt.Errorf("freeze key is required for a soulbound token")
	}
	if params.WipeKey == nil {
		return nil, fmt.Errorf("wipe key is required to revoke badges")
	}
	if params.SupplyKey == nil {
		return nil, fmt.Errorf("supply key is required to mint badges")
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(strings.TrimSpace(params.Name)).
		SetTokenSymbol(params.Symbol).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetTreasuryAccountID(params.Treasury).
		SetFreezeDefault(true).
		SetFreezeKey(params.FreezeKey).
		SetWipeKey(params.WipeKey).
		SetSupplyKey(params.SupplyKey)

	if trimmed := strings.TrimSpace(params.Memo); trimmed != "" {
		transaction.SetTokenMemo(trimmed)
	}

	return transaction, nil
}

// BuildUnfreezeTx builds the transaction that thaws an account for one
// token, opening the issuance window.
func BuildUnfreezeTx(tokenID string, accountID string) (*hedera.TokenUnfreezeTransaction, error) {
	parsedTokenID, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	parsedAccountID, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	return hedera.NewTokenUnfreezeTransaction().
		SetTokenID(parsedTokenID).
		SetAccountID(parsedAccountID), nil
}

// BuildFreezeTx builds the transaction that refreezes an account for one
// token, closing the issuance window.
func BuildFreezeTx(tokenID string, accountID string) (*hedera.TokenFreezeTransaction, error) {
	parsedTokenID, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	parsedAccountID, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	return hedera.NewTokenFreezeTransaction().
		SetTokenID(parsedTokenID).
		SetAccountID(parsedAccountID), nil
}

// BuildWipeTx builds the transaction that removes one serial from a
// holder, revoking the badge.
func BuildWipeTx(tokenID string, accountID string, serial int64) (*hedera.TokenWipeTransaction, error) {
	parsedTokenID, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	parsedAccountID, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if serial <= 0 {
		return nil, fmt.Errorf("serial must be positive")
	}

	return hedera.NewTokenWipeTransaction().
		SetTokenID(parsedTokenID).
		SetAccountID(parsedAccountID).
		SetSerialNumbers([]int64{serial}), nil
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
