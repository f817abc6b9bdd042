package token

import (
	"errors"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestBuildTokenCreateTx(t *testing.T) {
	key, _ := hedera.PrivateKeyGenerateEd25519()
	treasury, _ := hedera.AccountIDFromString("0.0.1001")

	transaction, err := BuildTokenCreateTx(CreateTxParams{
		Name:          "Solar Credits",
		Symbol:        "SCX",
		Decimals:      2,
		InitialSupply: 100000,
		Treasury:      treasury,
		SupplyKey:     key.PublicKey(),
		Memo:          "demo token",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction.GetTokenSymbol() != "SCX" {
		t.Fatalf("unexpected symbol %q", transaction.GetTokenSymbol())
	}
	if transaction.GetTokenName() != "Solar Credits" {
		t.Fatalf("unexpected name %q", transaction.GetTokenName())
	}
	if transaction.GetDecimals() != 2 {
		t.Fatalf("unexpected decimals %d", transaction.GetDecimals())
	}
	if transaction.GetInitialSupply() != 100000 {
		t.Fatalf("unexpected initial supply %d", transaction.GetInitialSupply())
	}
}

func TestBuildTokenCreateTxFailures(t *testing.T) {
	treasury, _ := hedera.AccountIDFromString("0.0.1001")

	if _, err := BuildTokenCreateTx(CreateTxParams{Symbol: "SCX", Treasury: treasury}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := BuildTokenCreateTx(CreateTxParams{Name: "ok", Treasury: treasury}); err == nil {
		t.Fatal("expected error for missing symbol")
	}
	if _, err := BuildTokenCreateTx(CreateTxParams{Name: "ok", Symbol: "OK", Decimals: 19, Treasury: treasury}); err == nil {
		t.Fatal("expected error for excessive decimals")
	}
}

func TestBuildTokenMintTx(t *testing.T) {
	transaction, err := BuildTokenMintTx(MintTxParams{TokenID: "0.0.2002", Amount: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction.GetAmount() != 500 {
		t.Fatalf("unexpected amount %d", transaction.GetAmount())
	}
}

func TestBuildTokenMintTxFailures(t *testing.T) {
	if _, err := BuildTokenMintTx(MintTxParams{Amount: 1}); err == nil {
		t.Fatal("expected error for missing token ID")
	}
	if _, err := BuildTokenMintTx(MintTxParams{TokenID: "bogus", Amount: 1}); err == nil {
		t.Fatal("expected error for malformed token ID")
	}

	_, err := BuildTokenMintTx(MintTxParams{TokenID: "0.0.2002", Amount: 0})
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	var invalid InvalidAmountError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAmountError, got %T", err)
	}
}

func TestBuildTokenAssociateTx(t *testing.T) {
	transaction, err := BuildTokenAssociateTx(AssociateTxParams{
		AccountID: "0.0.1001",
		TokenIDs:  []string{"0.0.2002", "0.0.2003"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction == nil {
		t.Fatal("expected transaction")
	}
}

func TestBuildTokenAssociateTxFailures(t *testing.T) {
	if _, err := BuildTokenAssociateTx(AssociateTxParams{TokenIDs: []string{"0.0.1"}}); err == nil {
		t.Fatal("expected error for missing account ID")
	}
	if _, err := BuildTokenAssociateTx(AssociateTxParams{AccountID: "0.0.1001"}); err == nil {
		t.Fatal("expected error for empty token list")
	}
	if _, err := BuildTokenAssociateTx(AssociateTxParams{AccountID: "0.0.1001", TokenIDs: []string{"bogus"}}); err == nil {
		t.Fatal("expected error for malformed token ID")
	}
}

func TestBuildTokenTransferTx(t *testing.T) {
	transaction, err := BuildTokenTransferTx(TransferTxParams{
		TokenID: "0.0.2002",
		From:    "0.0.1001",
		To:      "0.0.1002",
		Amount:  25,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction == nil {
		t.Fatal("expected transaction")
	}
}

func TestBuildTokenTransferTxFailures(t *testing.T) {
	base := TransferTxParams{TokenID: "0.0.2002", From: "0.0.1001", To: "0.0.1002", Amount: 25}

	missingToken := base
	missingToken.TokenID = ""
	if _, err := BuildTokenTransferTx(missingToken); err == nil {
		t.Fatal("expected error for missing token ID")
	}

	missingFrom := base
	missingFrom.From = ""
	if _, err := BuildTokenTransferTx(missingFrom); err == nil {
		t.Fatal("expected error for missing sender")
	}

	missingTo := base
	missingTo.To = ""
	if _, err := BuildTokenTransferTx(missingTo); err == nil {
		t.Fatal("expected error for missing receiver")
	}

	zeroAmount := base
	zeroAmount.Amount = 0
	if _, err := BuildTokenTransferTx(zeroAmount); err == nil {
		t.Fatal("expected error for zero amount")
	}

	negativeAmount := base
	negativeAmount.Amount = -5
	if _, err := BuildTokenTransferTx(negativeAmount); err == nil {
		t.Fatal("expected error for negative amount")
	}
}
