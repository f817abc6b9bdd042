package soulbound

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/ledgerline/htskit-go/pkg/mirror"
	"github.com/ledgerline/htskit-go/pkg/nft"
	"github.com/ledgerline/htskit-go/pkg/shared"
	"github.com/ledgerline/htskit-go/pkg/submit"
	"github.com/ledgerline/htskit-go/pkg/token"
)

// Client issues and revokes soulbound badges. The operator acts as the
// issuer: it holds the freeze, wipe, and supply keys of every badge
// collection it creates, and badge accounts stay frozen outside the
// issuance window, so holders cannot move badges between themselves.
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

// CreateBadge deploys a badge collection. The treasury defaults to the
// operator, and the operator key serves as the freeze, wipe, and supply
// key. No admin key is set, so the collection is immutable once created.
func (c *Client) CreateBadge(ctx context.Context, options CreateBadgeOptions) (CreateBadgeResult, error) {
	symbol, err := token.ResolveSymbol(options.Name, options.Symbol)
	if err != nil {
		return CreateBadgeResult{}, err
	}

	treasuryID := c.operatorID
	var treasuryKey *hedera.PrivateKey
	if trimmed := strings.TrimSpace(options.TreasuryAccountID); trimmed != "" {
		parsedTreasuryID, parseErr := parseAccountID(trimmed)
		if parseErr != nil {
			return CreateBadgeResult{}, parseErr
		}
		treasuryID = parsedTreasuryID

		if strings.TrimSpace(options.TreasuryKey) == "" {
			return CreateBadgeResult{}, fmt.Errorf("treasury key is required for a non-operator treasury")
		}
		parsedTreasuryKey, keyErr := shared.ParsePrivateKey(options.TreasuryKey)
		if keyErr != nil {
			return CreateBadgeResult{}, keyErr
		}
		treasuryKey = &parsedTreasuryKey
	}

	issuerKey := hedera.Key(c.operatorKey.PublicKey())
	transaction, err := BuildBadgeCreateTx(BadgeCreateTxParams{
		Name:      options.Name,
		Symbol:    symbol,
		Treasury:  treasuryID,
		FreezeKey: issuerKey,
		WipeKey:   issuerKey,
		SupplyKey: issuerKey,
		Memo:      options.Memo,
	})
	if err != nil {
		return CreateBadgeResult{}, err
	}
	if trimmed := strings.TrimSpace(options.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return CreateBadgeResult{}, fmt.Errorf("failed to freeze badge create transaction: %w", err)
	}
	if treasuryKey != nil {
		frozen = frozen.Sign(*treasuryKey)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return CreateBadgeResult{}, err
	}
	receipt, err := submit.Receipt(c.hederaClient, response)
	if err != nil {
		return CreateBadgeResult{}, err
	}
	if receipt.TokenID == nil {
		return CreateBadgeResult{}, fmt.Errorf("badge create receipt did not include a token ID")
	}

	return CreateBadgeResult{
		TokenID:       receipt.TokenID.String(),
		Symbol:        symbol,
		TransactionID: response.TransactionID.String(),
		Receipt:       receipt,
	}, nil
}

// Issue mints a new badge serial and places it with the holder. The
// holder's account is unfrozen only for the duration of the transfer and
// refrozen afterwards, even when a step in between fails. Association is
// skipped when the holder already holds a relationship with the token.
func (c *Client) Issue(ctx context.Context, options IssueOptions) (IssueResult, error) {
	tokenID := strings.TrimSpace(options.TokenID)
	if tokenID == "" {
		return IssueResult{}, fmt.Errorf("token ID is required")
	}
	holderID := strings.TrimSpace(options.HolderID)
	if holderID == "" {
		return IssueResult{}, fmt.Errorf("holder account ID is required")
	}
	if len(options.Metadata) == 0 {
		return IssueResult{}, fmt.Errorf("badge metadata is required")
	}
	if strings.TrimSpace(options.HolderKey) == "" {
		return IssueResult{}, fmt.Errorf("holder key is required to associate the badge")
	}
	holderKey, err := shared.ParsePrivateKey(options.HolderKey)
	if err != nil {
		return IssueResult{}, err
	}

	if err := c.associateHolder(ctx, tokenID, holderID, holderKey); err != nil {
		return IssueResult{}, err
	}

	if err := c.setFrozen(ctx, tokenID, holderID, false); err != nil {
		return IssueResult{}, fmt.Errorf("failed to unfreeze holder: %w", err)
	}

	result, issueErr := c.mintAndTransfer(ctx, tokenID, holderID, options.Metadata)

	// The holder must end up frozen again regardless of how the mint or
	// transfer went.
	if refreezeErr := c.setFrozen(ctx, tokenID, holderID, true); refreezeErr != nil {
		refreezeErr = fmt.Errorf("failed to refreeze holder: %w", refreezeErr)
		if issueErr != nil {
			return IssueResult{}, errors.Join(issueErr, refreezeErr)
		}
		return IssueResult{}, refreezeErr
	}
	if issueErr != nil {
		return IssueResult{}, issueErr
	}

	return result, nil
}

// Revoke wipes a badge serial from the holder's account using the issuer's
// wipe key. The serial is destroyed, not returned to the treasury.
func (c *Client) Revoke(ctx context.Context, options RevokeOptions) error {
	transaction, err := BuildWipeTx(options.TokenID, options.HolderID, options.Serial)
	if err != nil {
		return err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return fmt.Errorf("failed to freeze wipe transaction: %w", err)
	}

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		return err
	}
	if _, err := submit.Receipt(c.hederaClient, response); err != nil {
		return err
	}
	return nil
}

// IsHeldBy reports whether the account currently holds any serial of the
// badge collection, per the mirror node.
func (c *Client) IsHeldBy(ctx context.Context, tokenID string, accountID string) (bool, error) {
	trimmedTokenID := strings.TrimSpace(tokenID)
	if trimmedTokenID == "" {
		return false, fmt.Errorf("token ID is required")
	}

	nfts, err := c.mirrorClient.GetAccountNFTs(ctx, accountID)
	if err != nil {
		return false, err
	}
	for _, held := range nfts {
		if held.TokenID == trimmedTokenID && !held.Deleted {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) associateHolder(
	ctx context.Context,
	tokenID string,
	holderID string,
	holderKey hedera.PrivateKey,
) error {
	transaction, err := token.BuildTokenAssociateTx(token.AssociateTxParams{
		AccountID: holderID,
		TokenIDs:  []string{tokenID},
	})
	if err != nil {
		return err
	}

	frozen, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return fmt.Errorf("failed to freeze associate transaction: %w", err)
	}
	frozen = frozen.Sign(holderKey)

	response, err := submit.Transaction(ctx, c.hederaClient, frozen, c.submitOptions)
	if err != nil {
		if isAlreadyAssociated(err) {
			return nil
		}
		return err
	}
	if _, err := submit.Receipt(c.hederaClient, response); err != nil {
		if isAlreadyAssociated(err) {
			return nil
		}
		return err
	}
	return nil
}

func (c *Client) setFrozen(ctx context.Context, tokenID string, holderID string, frozen bool) error {
	var transaction hedera.TransactionInterface
	if frozen {
		built, err := BuildFreezeTx(tokenID, holderID)
		if err != nil {
			return err
		}
		readied, err := built.FreezeWith(c.hederaClient)
		if err != nil {
			return err
		}
		transaction = readied
	} else {
		built, err := BuildUnfreezeTx(tokenID, holderID)
		if err != nil {
			return err
		}
		readied, err := built.FreezeWith(c.hederaClient)
		if err != nil {
			return err
		}
		transaction = readied
	}

	response, err := submit.Transaction(ctx, c.hederaClient, transaction, c.submitOptions)
	if err != nil {
		return err
	}
	if _, err := submit.Receipt(c.hederaClient, response); err != nil {
		return err
	}
	return nil
}

func (c *Client) mintAndTransfer(
	ctx context.Context,
	tokenID string,
	holderID string,
	metadata []byte,
) (IssueResult, error) {
	mintTx, err := nft.BuildMintTx(nft.MintTxParams{
		TokenID:  tokenID,
		Metadata: [][]byte{metadata},
	})
	if err != nil {
		return IssueResult{}, err
	}
	frozenMint, err := mintTx.FreezeWith(c.hederaClient)
	if err != nil {
		return IssueResult{}, fmt.Errorf("failed to freeze badge mint transaction: %w", err)
	}
	mintResponse, err := submit.Transaction(ctx, c.hederaClient, frozenMint, c.submitOptions)
	if err != nil {
		return IssueResult{}, err
	}
	mintReceipt, err := submit.Receipt(c.hederaClient, mintResponse)
	if err != nil {
		return IssueResult{}, err
	}
	if len(mintReceipt.SerialNumbers) == 0 {
		return IssueResult{}, fmt.Errorf("badge mint receipt did not include a serial number")
	}
	serial := mintReceipt.SerialNumbers[0]

	transferTx, err := nft.BuildTransferTx(nft.TransferTxParams{
		TokenID: tokenID,
		Serial:  serial,
		From:    c.operatorID.String(),
		To:      holderID,
	})
	if err != nil {
		return IssueResult{}, err
	}
	frozenTransfer, err := transferTx.FreezeWith(c.hederaClient)
	if err != nil {
		return IssueResult{}, fmt.Errorf("failed to freeze badge transfer transaction: %w", err)
	}
	transferResponse, err := submit.Transaction(ctx, c.hederaClient, frozenTransfer, c.submitOptions)
	if err != nil {
		return IssueResult{}, err
	}
	if _, err := submit.Receipt(c.hederaClient, transferResponse); err != nil {
		return IssueResult{}, err
	}

	return IssueResult{
		Serial:        serial,
		TransactionID: transferResponse.TransactionID.String(),
	}, nil
}

func isAlreadyAssociated(err error) bool {
	var receiptStatus submit.ReceiptStatusError
	if errors.As(err, &receiptStatus) {
		return receiptStatus.Status == hedera.StatusTokenAlreadyAssociatedToAccount
	}
	var hederaReceipt hedera.ErrHederaReceiptStatus
	if errors.As(err, &hederaReceipt) {
		return hederaReceipt.Status == hedera.StatusTokenAlreadyAssociatedToAccount
	}
	var precheck hedera.ErrHederaPreCheckStatus
	if errors.As(err, &precheck) {
		return precheck.Status == hedera.StatusTokenAlreadyAssociatedToAccount
	}
	return false
}
