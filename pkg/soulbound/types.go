package soulbound

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/submit"
)

type ClientConfig struct {
	OperatorAccountID  string
	OperatorPrivateKey string
	Network            string
	MirrorBaseURL      string
	MirrorAPIKey       string
	Submit             submit.Options
}

type CreateBadgeOptions struct {
	Name string
	// Symbol is derived from Name via pkg/ticker when left empty.
	Symbol            string
	Memo              string
	TreasuryAccountID string
	TreasuryKey       string
	TransactionMemo   string
}

type CreateBadgeResult struct {
	TokenID       string
	Symbol        string
	TransactionID string
	Receipt       hedera.TransactionReceipt
}

type IssueOptions struct {
	TokenID string
	// Metadata is the badge payload minted onto the serial, at most 100
	// bytes (typically a URI).
	Metadata  []byte
	HolderID  string
	HolderKey string
}

type IssueResult struct {
	Serial        int64
	TransactionID string
}

type RevokeOptions struct {
	TokenID  string
	Serial   int64
	HolderID string
}

type BadgeCreateTxParams struct {
	Name      string
	Symbol    string
	Treasury  hedera.AccountID
	FreezeKey hedera.Key
	WipeKey   hedera.Key
	SupplyKey hedera.Key
	Memo      string
}
