package account

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/submit"
)

const DefaultInitialBalanceHbar = 10.0

// KeyType selects the signature scheme for a generated account key.
type KeyType string

const (
	KeyTypeEd25519 KeyType = "ed25519"
	KeyTypeECDSA   KeyType = "ecdsa"
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
	InitialBalanceHbar            float64
	MaxAutomaticTokenAssociations int32
	AccountMemo                   string
	TransactionMemo               string
	KeyType                       KeyType
}

type CreateResult struct {
	AccountID  string
	PrivateKey hedera.PrivateKey
	PublicKey  hedera.PublicKey
	Receipt    hedera.TransactionReceipt
}

type AccountCreateTxParams struct {
	PublicKey                     hedera.PublicKey
	InitialBalanceHbar            float64
	MaxAutomaticTokenAssociations int32
	AccountMemo                   string
	TransactionMemo               string
}
