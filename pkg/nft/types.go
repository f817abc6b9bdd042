package nft

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/submit"
)

const (
	// MaxMetadataBytes is the HTS per-serial metadata limit.
	MaxMetadataBytes = 100

	// MaxBatchSize is the HTS cap on serials minted in one transaction.
	MaxBatchSize = 10
)

type ClientConfig struct {
	OperatorAccountID  string
	OperatorPrivateKey string
	Network            string
	MirrorBaseURL      string
	MirrorAPIKey       string
	Submit             submit.Options
}

type CreateCollectionOptions struct {
	Name string
	// Symbol is derived from Name via pkg/ticker when left empty.
	Symbol string
	// MaxSupply caps the collection when positive; zero means unbounded.
	MaxSupply         int64
	TreasuryAccountID string
	TreasuryKey       string
	AdminKey          string
	SupplyKey         string
	Memo              string
	TransactionMemo   string
}

type CreateCollectionResult struct {
	TokenID       string
	Symbol        string
	TransactionID string
	Receipt       hedera.TransactionReceipt
}

type MintOptions struct {
	TokenID         string
	Metadata        [][]byte
	SupplyKey       string
	TransactionMemo string
}

type MintResult struct {
	SerialNumbers []int64
	TransactionID string
}

type TransferOptions struct {
	TokenID         string
	Serial          int64
	From            string
	FromKey         string
	To              string
	TransactionMemo string
}

type TransferResult struct {
	TransactionID string
}

type CollectionCreateTxParams struct {
	Name      string
	Symbol    string
	MaxSupply int64
	Treasury  hedera.AccountID
	AdminKey  hedera.Key
	SupplyKey hedera.Key
	Memo      string
}

type MintTxParams struct {
	TokenID         string
	Metadata        [][]byte
	TransactionMemo string
}

type TransferTxParams struct {
	TokenID         string
	Serial          int64
	From            string
	To              string
	TransactionMemo string
}
