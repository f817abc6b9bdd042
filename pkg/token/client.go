package token

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/mirror"
	"github.com/ledgerline/htskit-go/pkg/shared"
	"github.com/ledgerline/htskit-go/pkg/submit"
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

// Create deploys a fungible token. The treasury defaults to the operator,
// and the supply key defaults to the operator key so the token stays
// mintable. An empty Symbol is derived from the name.
func (c *Client) Create(ctx context.Context, options CreateOptions) (CreateResult, error) {
	symbol, err := ResolveSymbol(options.Name, options.Symbol)
	if err != nil {
		return CreateResult{}, err
	}

	treasuryID := c.operatorID
	var treasuryKey *hedera.PrivateKey
	if trimmed := strings.TrimSpace(options.TreasuryAccountID); trimmed != "" {
		parsedTreasuryID, parseErr := parseAccountID(trimmed)
		if parseErr != nil {
			return CreateResult{}, parseErr
		}
		treasuryID = parsedTreasuryID

		if strings.TrimSpace(options.TreasuryKey) == "" {
			return CreateResult{}, fmt.Errorf("treasury key is required for a non-operator treasury")
		}
		parsedTreasuryKey, keyErr := shared.ParsePrivateKey(options.TreasuryKey)
		if keyErr != nil {
			return CreateResult{}, keyErr
		}
		treasuryKey = &parsedTreasuryKey
	}

	var adminKey *hedera.PrivateKey
	if strings.TrimSpace(options.AdminKey) != "" {
		parsedAdminKey, keyErr := shared.ParsePrivateKey(options.AdminKey)
		if keyErr != nil {
			return CreateResult{}, keyErr
		}
		adminKey = &parsedAdminKey
	}

	supplyPublicKey := hedera.Key(c.operatorKey.PublicKey())
	if strings.TrimSpace(options.SupplyKey) != "" {
		parsedSupplyKey, keyErr := shared.ParsePrivateKey(options.SupplyKey)
		if keyErr != nil {
			return CreateResult{}, keyErr
		}
		supplyPublicKey = parsedSupplyKey.PublicKey()
	}

	params := CreateTxParams{
		Name:          options.Name,
		Symbol:        symbol,
		Decimals:      options.Decimals,
		InitialSupply: options.InitialSupply,
		Treasury:      treasuryID,
		SupplyKey:     supplyPublicKey,
		Memo:          options.Memo,
	}
	if adminKey != nil {
		params.AdminKey = adminKey.PublicKey()
	}

	transaction, err := BuildTokenCreateTx(params)
	if err != nil {
		return CreateResult{}, err
	}
	if trimmed := strings.TrimSpace(options.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to freeze token create transaction: %w", err)
	}
	if treasuryKey != nil {
		frozen = frozen.Sign(*treasuryKey)
	}
	if adminKey != nil {
		frozen = frozen.Sign(*adminKey)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return CreateResult{}, err
	}
	receipt, err := submit.Receipt(c.hederaClient, response)
	if err != nil {
		return CreateResult{}, err
	}
	if receipt.TokenID == nil {
		return CreateResult{}, fmt.Errorf("token create receipt did not include a token ID")
	}

	return CreateResult{
		TokenID:       receipt.TokenID.String(),
		Symbol:        symbol,
		TransactionID: response.TransactionID.String(),
		Receipt:       receipt,
	}, nil
}

// Mint adds supply to an existing token. The supply key signs when
// provided; otherwise the operator signature from freezing suffices.
func (c *Client) Mint(ctx context.Context, options MintOptions) (MintResult, error) {
	transaction, err := BuildTokenMintTx(MintTxParams{
		TokenID:         options.TokenID,
		Amount:          options.Amount,
		TransactionMemo: options.TransactionMemo,
	})
	if err != nil {
		return MintResult{}, err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("failed to freeze token mint transaction: %w", err)
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
		TotalSupply:   receipt.TotalSupply,
		TransactionID: response.TransactionID.String(),
	}, nil
}

// Associate opts an account into one or more tokens. The account key
// signs the association.
func (c *Client) Associate(ctx context.Context, options AssociateOptions) (string, error) {
	transaction, err := BuildTokenAssociateTx(AssociateTxParams{
		AccountID:       options.AccountID,
		TokenIDs:        options.TokenIDs,
		TransactionMemo: options.TransactionMemo,
	})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(options.AccountKey) == "" {
		return "", fmt.Errorf("account key is required to sign the association")
	}
	accountKey, err := shared.ParsePrivateKey(options.AccountKey)
	if err != nil {
		return "", err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return "", fmt.Errorf("failed to freeze token associate transaction: %w", err)
	}
	frozen = frozen.Sign(accountKey)

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return "", err
	}
	if _, err := submit.Receipt(c.hederaClient, response); err != nil {
		return "", err
	}

	return response.TransactionID.String(), nil
}

// Transfer moves token units between two associated accounts. The sender
// key signs when provided; a transfer out of the operator account needs no
// extra signature.
func (c *Client) Transfer(ctx context.Context, options TransferOptions) (TransferResult, error) {
	transaction, err := BuildTokenTransferTx(TransferTxParams{
		TokenID:         options.TokenID,
		From:            options.From,
		To:              options.To,
		Amount:          options.Amount,
		TransactionMemo: options.TransactionMemo,
	})
	if err != nil {
		return TransferResult{}, err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return TransferResult{}, fmt.Errorf("failed to freeze token transfer transaction: %w", err)
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

// Balance returns an account's balance of one token from the mirror node.
// Accounts that never associated with the token yield NotAssociatedError.
func (c *Client) Balance(ctx context.Context, accountID string, tokenID string) (int64, error) {
	normalizedAccountID := strings.TrimSpace(accountID)
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedAccountID == "" {
		return 0, fmt.Errorf("account ID is required")
	}
	if normalizedTokenID == "" {
		return 0, fmt.Errorf("token ID is required")
	}

	relationships, err := c.mirrorClient.GetAccountTokens(ctx, normalizedAccountID)
	if err != nil {
		return 0, err
	}

	for _, relationship := range relationships {
		if relationship.TokenID == normalizedTokenID {
			return relationship.Balance, nil
		}
	}

	return 0, NewNotAssociatedError(normalizedAccountID, normalizedTokenID)
}
