package nft

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/mirror"
	"github.com/ledgerline/htskit-go/pkg/shared"
	"github.com/ledgerline/htskit-go/pkg/submit"
	"github.com/ledgerline/htskit-go/pkg/token"
)

type Client struct {
	hederaClient  *hedera.Client
	mirrorClient  *mirror.Client
	operatorID    hedera.AccountID
	operatorKey   hedera.PrivateKey
	submitOptions submit.Options
}

// NewClient validates the operator configuration and wires a Hedera client
// plus a mirror client for the selected network.
func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	trimmedOperatorID := strings.TrimSpace(config.OperatorAccountID)
	if trimmedOperatorID == "" {
		return nil, fmt.Errorf("operator account ID is required")
	}
	trimmedOperatorKey := strings.TrimSpace(config.OperatorPrivateKey)
	if trimmedOperatorKey == "" {
		return nil, fmt.Errorf("operator private key is required")
	}

	operatorID, err := hedera.AccountIDFromString(trimmedOperatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID: %w", err)
	}
	operatorKey, err := shared.ParsePrivateKey(trimmedOperatorKey)
	if err != nil {
		return nil, err
	}

	hederaClient, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}
	hederaClient.SetOperator(operatorID, operatorKey)

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: network,
		BaseURL: config.MirrorBaseURL,
		APIKey:  config.MirrorAPIKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		hederaClient:  hederaClient,
		mirrorClient:  mirrorClient,
		operatorID:    operatorID,
		operatorKey:   operatorKey,
		submitOptions: config.Submit,
	}, nil
}

// MirrorClient returns the configured mirror client.
func (c *Client) MirrorClient() *mirror.Client {
	return c.mirrorClient
}

// CreateCollection deploys an NFT collection. The treasury defaults to the
// operator and the supply key defaults to the operator key.
func (c *Client) CreateCollection(
	ctx context.Context,
	options CreateCollectionOptions,
) (CreateCollectionResult, error) {
	symbol, err := token.ResolveSymbol(options.Name, options.Symbol)
	if err != nil {
		return CreateCollectionResult{}, err
	}

	treasuryID := c.operatorID
	var treasuryKey *hedera.PrivateKey
	if trimmed := strings.TrimSpace(options.TreasuryAccountID); trimmed != "" {
		parsedTreasuryID, parseErr := parseAccountID(trimmed)
		if parseErr != nil {
			return CreateCollectionResult{}, parseErr
		}
		treasuryID = parsedTreasuryID

		if strings.TrimSpace(options.TreasuryKey) == "" {
			return CreateCollectionResult{}, fmt.Errorf("treasury key is required for a non-operator treasury")
		}
		parsedTreasuryKey, keyErr := shared.ParsePrivateKey(options.TreasuryKey)
		if keyErr != nil {
			return CreateCollectionResult{}, keyErr
		}
		treasuryKey = &parsedTreasuryKey
	}

	var adminKey *hedera.PrivateKey
	if strings.TrimSpace(options.AdminKey) != "" {
		parsedAdminKey, keyErr := shared.ParsePrivateKey(options.AdminKey)
		if keyErr != nil {
			return CreateCollectionResult{}, keyErr
		}
		adminKey = &parsedAdminKey
	}

	supplyPublicKey := hedera.Key(c.operatorKey.PublicKey())
	if strings.TrimSpace(options.SupplyKey) != "" {
		parsedSupplyKey, keyErr := shared.ParsePrivateKey(options.SupplyKey)
		if keyErr != nil {
			return CreateCollectionResult{}, keyErr
		}
		supplyPublicKey = parsedSupplyKey.PublicKey()
	}

	params := CollectionCreateTxParams{
		Name:      options.Name,
		Symbol:    symbol,
		MaxSupply: options.MaxSupply,
		Treasury:  treasuryID,
		SupplyKey: supplyPublicKey,
		Memo:      options.Memo,
	}
	if adminKey != nil {
		params.AdminKey = adminKey.PublicKey()
	}

	transaction, err := BuildCollectionCreateTx(params)
	if err != nil {
		return CreateCollectionResult{}, err
	}
	if trimmed := strings.TrimSpace(options.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return CreateCollectionResult{}, fmt.Errorf("failed to freeze collection create transaction: %w", err)
	}
	if treasuryKey != nil {
		frozen = frozen.Sign(*treasuryKey)
	}
	if adminKey != nil {
		frozen = frozen.Sign(*adminKey)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return CreateCollectionResult{}, err
	}
	receipt, err := submit.Receipt(c.hederaClient, response)
	if err != nil {
		return CreateCollectionResult{}, err
	}
	if receipt.TokenID == nil {
		return CreateCollectionResult{}, fmt.Errorf("collection create receipt did not include a token ID")
	}

	return CreateCollectionResult{
		TokenID:       receipt.TokenID.String(),
		Symbol:        symbol,
		TransactionID: response.TransactionID.String(),
		Receipt:       receipt,
	}, nil
}

// Mint creates one serial per metadata entry and returns the assigned
// serial numbers. The supply key signs when provided.
func (c *Client) Mint(ctx context.Context, options MintOptions) (MintResult, error) {
	transaction, err := BuildMintTx(MintTxParams{
		TokenID:         options.TokenID,
		Metadata:        options.Metadata,
		TransactionMemo: options.TransactionMemo,
	})
	if err != nil {
		return MintResult{}, err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("failed to freeze mint transaction: %w", err)
	}
	if strings.TrimSpace(options.SupplyKey) != "" {
		supplyKey, keyErr := shared.ParsePrivateKey(options.SupplyKey)
		if keyErr != nil {
			return MintResult{}, keyErr
		}
		frozen = frozen.Sign(supplyKey)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return MintResult{}, err
	}
	receipt, err := submit.Receipt(c.hederaClient, response)
	if err != nil {
		return MintResult{}, err
	}

	return MintResult{
		SerialNumbers: receipt.SerialNumbers,
		TransactionID: response.TransactionID.String(),
	}, nil
}

// Transfer moves one serial between two accounts. The sender key signs
// when provided; transfers out of the operator account need no extra
// signature.
func (c *Client) Transfer(ctx context.Context, options TransferOptions) (TransferResult, error) {
	transaction, err := BuildTransferTx(TransferTxParams{
		TokenID:         options.TokenID,
		Serial:          options.Serial,
		From:            options.From,
		To:              options.To,
		TransactionMemo: options.TransactionMemo,
	})
	if err != nil {
		return TransferResult{}, err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return TransferResult{}, fmt.Errorf("failed to freeze transfer transaction: %w", err)
	}
	if strings.TrimSpace(options.FromKey) != "" {
		fromKey, keyErr := shared.ParsePrivateKey(options.FromKey)
		if keyErr != nil {
			return TransferResult{}, keyErr
		}
		frozen = frozen.Sign(fromKey)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return TransferResult{}, err
	}
	if _, err := submit.Receipt(c.hederaClient, response); err != nil {
		return TransferResult{}, err
	}

	return TransferResult{TransactionID: response.TransactionID.String()}, nil
}

// OwnedBy lists the NFTs an account currently holds, per the mirror node.
func (c *Client) OwnedBy(ctx context.Context, accountID string) ([]mirror.NFT, error) {
	return c.mirrorClient.GetAccountNFTs(ctx, accountID)
}
