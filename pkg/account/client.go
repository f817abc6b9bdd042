package account

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

// HederaClient returns the underlying SDK client.
func (c *Client) HederaClient() *hedera.Client {
	return c.hederaClient
}

// MirrorClient returns the configured mirror client.
func (c *Client) MirrorClient() *mirror.Client {
	return c.mirrorClient
}

// Create generates a fresh key pair, funds a new account from the
// operator, and returns the new account ID together with its keys. The
// caller owns the returned private key; it is never persisted.
func (c *Client) Create(ctx context.Context, options CreateOptions) (CreateResult, error) {
	privateKey, err := generateKey(options.KeyType)
	if err != nil {
		return CreateResult{}, err
	}
	publicKey := privateKey.PublicKey()

	transaction, err := BuildAccountCreateTx(AccountCreateTxParams{
		PublicKey:                     publicKey,
		InitialBalanceHbar:            options.InitialBalanceHbar,
		MaxAutomaticTokenAssociations: options.MaxAutomaticTokenAssociations,
		AccountMemo:                   options.AccountMemo,
		TransactionMemo:               options.TransactionMemo,
	})
	if err != nil {
		return CreateResult{}, err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to freeze account create transaction: %w", err)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return CreateResult{}, err
	}

	receipt, err := submit.Receipt(c.hederaClient, response)
	if err != nil {
		return CreateResult{}, err
	}
	if receipt.AccountID == nil {
		return CreateResult{}, fmt.Errorf("account create receipt did not include an account ID")
	}

	return CreateResult{
		AccountID:  receipt.AccountID.String(),
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Receipt:    receipt,
	}, nil
}

// Balance queries the network for an account's hbar and token balances.
func (c *Client) Balance(ctx context.Context, accountID string) (hedera.AccountBalance, error) {
	_ = ctx

	parsedAccountID, err := hedera.AccountIDFromString(strings.TrimSpace(accountID))
	if err != nil {
		return hedera.AccountBalance{}, fmt.Errorf("invalid account ID: %w", err)
	}

	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(parsedAccountID).
		Execute(c.hederaClient)
	if err != nil {
		return hedera.AccountBalance{}, fmt.Errorf("failed to query account balance: %w", err)
	}

	return balance, nil
}

// MirrorBalance returns the mirror node's post-consensus view of an
// account, including its per-token balances.
func (c *Client) MirrorBalance(ctx context.Context, accountID string) (mirror.AccountInfo, error) {
	return c.mirrorClient.GetAccount(ctx, accountID)
}

func generateKey(keyType KeyType) (hedera.PrivateKey, error) {
	switch keyType {
	case KeyTypeECDSA:
		key, err := hedera.PrivateKeyGenerateEcdsa()
		if err != nil {
			return hedera.PrivateKey{}, fmt.Errorf("failed to generate ecdsa private key: %w", err)
		}
		return key, nil
	case KeyTypeEd25519, "":
		key, err := hedera.PrivateKeyGenerateEd25519()
		if err != nil {
			return hedera.PrivateKey{}, fmt.Errorf("failed to generate ed25519 private key: %w", err)
		}
		return key, nil
	default:
		return hedera.PrivateKey{}, fmt.Errorf("unsupported key type %q", keyType)
	}
}
