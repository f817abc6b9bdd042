package soulbound

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestBuildBadgeCreateTx(t *testing.T) {
	key, _ := hedera.PrivateKeyGenerateEd25519()
	treasury, _ := hedera.AccountIDFromString("0.0.1001")

	transaction, err := BuildBadgeCreateTx(BadgeCreateTxParams{
		Name:      "Contributor Badge",
		Symbol:    "CBX",
		Treasury:  treasury,
		FreezeKey: key.PublicKey(),
		WipeKey:   key.PublicKey(),
		SupplyKey: key.PublicKey(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction.GetTokenType() != hedera.TokenTypeNonFungibleUnique {
		t.Fatalf("expected NFT token type, got %v", transaction.GetTokenType())
	}
	if !transaction.GetFreezeDefault() {
		t.Fatal("expected freeze default to be set")
	}
}

func TestBuildBadgeCreateTxFailures(t *testing.T) {
	key, _ := hedera.PrivateKeyGenerateEd25519()
	treasury, _ := hedera.AccountIDFromString("0.0.1001")
	issuerKey := hedera.Key(key.PublicKey())

	valid := BadgeCreateTxParams{
		Name:      "Contributor Badge",
		Symbol:    "CBX",
		Treasury:  treasury,
		FreezeKey: issuerKey,
		WipeKey:   issuerKey,
		SupplyKey: issuerKey,
	}

	missingName := valid
	missingName.Name = ""
	if _, err := BuildBadgeCreateTx(missingName); err == nil {
		t.Fatal("expected error for missing name")
	}

	missingSymbol := valid
	missingSymbol.Symbol = " "
	if _, err := BuildBadgeCreateTx(missingSymbol); err == nil {
		t.Fatal("expected error for missing symbol")
	}

	missingFreezeKey := valid
	missingFreezeKey.FreezeKey = nil
	if _, err := BuildBadgeCreateTx(missingFreezeKey); err == nil {
		t.Fatal("expected error for missing freeze key")
	}

	missingWipeKey := valid
	missingWipeKey.WipeKey = nil
	if _, err := BuildBadgeCreateTx(missingWipeKey); err == nil {
		t.Fatal("expected error for missing wipe key")
	}

	missingSupplyKey := valid
	missingSupplyKey.SupplyKey = nil
	if _, err := BuildBadgeCreateTx(missingSupplyKey); err == nil {
		t.Fatal("expected error for missing supply key")
	}
}

func TestBuildFreezeAndUnfreezeTx(t *testing.T) {
	if _, err := BuildUnfreezeTx("0.0.3003", "0.0.1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := BuildFreezeTx("0.0.3003", "0.0.1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := BuildUnfreezeTx("", "0.0.1001"); err == nil {
		t.Fatal("expected error for missing token ID")
	}
	if _, err := BuildFreezeTx("0.0.3003", "bogus"); err == nil {
		t.Fatal("expected error for malformed account ID")
	}
}

func TestBuildWipeTx(t *testing.T) {
	transaction, err := BuildWipeTx("0.0.3003", "0.0.1001", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	serials := transaction.GetSerialNumbers()
	if len(serials) != 1 || serials[0] != 7 {
		t.Fatalf("unexpected serials %v", serials)
	}
}

func TestBuildWipeTxFailures(t *testing.T) {
	if _, err := BuildWipeTx("", "0.0.1001", 7); err == nil {
		t.Fatal("expected error for missing token ID")
	}
	if _, err := BuildWipeTx("0.0.3003", "", 7); err == nil {
		t.Fatal("expected error for missing account ID")
	}
	if _, err := BuildWipeTx("0.0.3003", "0.0.1001", 0); err == nil {
		t.Fatal("expected error for zero serial")
	}
}
