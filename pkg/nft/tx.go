package nft

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/token"
)

// BuildCollectionCreateTx builds an unsigned NFT collection create
// transaction. A positive MaxSupply makes the collection finite.
func BuildCollectionCreateTx(params CollectionCreateTxParams) (*hedera.TokenCreateTransaction, error) {
	if err := token.ValidateName(params.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Symbol) == "" {
		return nil, fmt.Errorf("collection symbol is required")
	}
	if params.SupplyKey == nil {
		return nil, fmt.Errorf("supply key is required to mint serials")
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(strings.TrimSpace(params.Name)).
		SetTokenSymbol(params.Symbol).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetTreasuryAccountID(params.Treasury).
		SetSupplyKey(params.SupplyKey)

	if params.MaxSupply > 0 {
		transaction.
			SetSupplyType(hedera.TokenSupplyTypeFinite).
			SetMaxSupply(params.MaxSupply)
	}
	if params.AdminKey != nil {
		transaction.SetAdminKey(params.AdminKey)
	}
	if trimmed := strings.TrimSpace(params.Memo); trimmed != "" {
		transaction.SetTokenMemo(trimmed)
	}

	return transaction, nil
}

// BuildMintTx builds an unsigned batch mint transaction, one serial per
// metadata entry.
func BuildMintTx(params MintTxParams) (*hedera.TokenMintTransaction, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	if len(params.Metadata) == 0 {
		return nil, fmt.Errorf("at least one metadata entry is required")
	}
	if len(params.Metadata) > MaxBatchSize {
		return nil, fmt.Errorf("cannot mint more than %d serials per transaction", MaxBatchSize)
	}
	for index, entry := range params.Metadata {
		if len(entry) == 0 {
			return nil, fmt.Errorf("metadata entry %d is empty", index)
		}
		if len(entry) > MaxMetadataBytes {
			return nil, fmt.Errorf("metadata entry %d exceeds %d bytes", index, MaxMetadataBytes)
		}
	}

	transaction := hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetMetadatas(params.Metadata)

	if trimmed := strings.TrimSpace(params.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	return transaction, nil
}

// BuildTransferTx builds an unsigned transfer of a single serial. The
// sending account must sign.
func BuildTransferTx(params TransferTxParams) (*hedera.TransferTransaction, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	if params.Serial <= 0 {
		return nil, fmt.Errorf("serial must be positive")
	}
	fromID, err := parseAccountID(params.From)
	if err != nil {
		return nil, err
	}
	toID, err := parseAccountID(params.To)
	if err != nil {
		return nil, err
	}

	nftID := hedera.NftID{TokenID: tokenID, SerialNumber: params.Serial}
	transaction := hedera.NewTransferTransaction().
		AddNftTransfer(nftID, fromID, toID)

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
