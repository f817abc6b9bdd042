package token

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/submit"
)

const (
	// MaxNameLength is the HTS token name limit.
	MaxNameLength = 100

	// MaxDecimals is the widest precision this toolkit accepts for a
	// fungible token.
	MaxDecimals = 18
)

type ClientConfig struct {
	OperatorAccountID  string
	OperatorPrivateKey string
	Network            string
	MirrorBaseURL      string
	MirrorAPIKey       string
	Submit             submit.Options
}

type CreateOptions struct {
	Name string
	// Symbol is derived from Name via pkg/ticker when left empty.
	Symbol            string
	Decimals          uint
	InitialSupply     uint64
	TreasuryAccountID string
	TreasuryKey       string
	AdminKey          string
	SupplyKey         string
	Memo              string
	TransactionMemo   string
}

type CreateResult struct {
	TokenID       string
	Symbol        string
	TransactionID string
	Receipt       hedera.TransactionReceipt
}

type MintOptions struct {
	TokenID         string
	Amount          uint64
	SupplyKey       string
	TransactionMemo string
}

type MintResult struct {
	TotalSupply   uint64
	TransactionID string
}

type AssociateOptions struct {
	AccountID       string
	AccountKey      string
	TokenIDs        []string
	TransactionMemo string
}

type TransferOptions struct {
	TokenID         string
	From            string
	FromKey         string
	To              string
	Amount          int64
	TransactionMemo string
}

type TransferResult struct {
	TransactionID string
}

type CreateTxParams struct {
	Name          string
	Symbol        string
	Decimals      uint
	InitialSupply uint64
	Treasury      hedera.AccountID
	AdminKey      hedera.Key
	SupplyKey     hedera.Key
	Memo          string
}

type MintTxParams struct {
	TokenID         string
	Amount          uint64
	TransactionMemo string
}

type AssociateTxParams struct {
	AccountID       string
	TokenIDs        []string
	TransactionMemo string
}

type TransferTxParams struct {
	TokenID         string
	From            string
	To              string
	Amount          int64
	TransactionMemo string
}
