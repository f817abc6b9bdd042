package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestNewClientValidation(t *testing.T) {
	key, _ := hedera.PrivateKeyGenerateEd25519()

	_, err := NewClient(ClientConfig{Network: "invalid"})
	if err == nil {
		t.Fatal("expected error for bad network")
	}

	_, err = NewClient(ClientConfig{Network: "testnet"})
	if err == nil {
		t.Fatal("expected error for missing operator ID")
	}

	_, err = NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "0.0.1"})
	if err == nil {
		t.Fatal("expected error for missing operator key")
	}

	_, err = NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "bogus", OperatorPrivateKey: key.String()})
	if err == nil {
		t.Fatal("expected error for malformed operator ID")
	}
}

func newTestTokenClient(t *testing.T, mirrorURL string) *Client {
	t.Helper()
	key, _ := hedera.PrivateKeyGenerateEd25519()
	client, err := NewClient(ClientConfig{
		Network:            "testnet",
		OperatorAccountID:  "0.0.12345",
		OperatorPrivateKey: key.String(),
		MirrorBaseURL:      mirrorURL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestCreateValidation(t *testing.T) {
	client := newTestTokenClient(t, "")

	if _, err := client.Create(context.Background(), CreateOptions{}); err == nil {
		t.Fatal("expected error for empty name")
	}

	_, err := client.Create(context.Background(), CreateOptions{
		Name:              "Solar Credits",
		TreasuryAccountID: "0.0.2",
	})
	if err == nil {
		t.Fatal("expected error for non-operator treasury without key")
	}

	_, err = client.Create(context.Background(), CreateOptions{
		Name:     "Solar Credits",
		AdminKey: "not-a-key",
	})
	if err == nil {
		t.Fatal("expected error for malformed admin key")
	}
}

func TestMintValidation(t *testing.T) {
	client := newTestTokenClient(t, "")

	if _, err := client.Mint(context.Background(), MintOptions{}); err == nil {
		t.Fatal("expected error for missing token ID")
	}
	if _, err := client.Mint(context.Background(), MintOptions{TokenID: "0.0.2002"}); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if _, err := client.Mint(context.Background(), MintOptions{TokenID: "0.0.2002", Amount: 1, SupplyKey: "bad"}); err == nil {
		t.Fatal("expected error for malformed supply key")
	}
}

func TestAssociateValidation(t *testing.T) {
	client := newTestTokenClient(t, "")

	_, err := client.Associate(context.Background(), AssociateOptions{
		AccountID: "0.0.1001",
		TokenIDs:  []string{"0.0.2002"},
	})
	if err == nil {
		t.Fatal("expected error for missing account key")
	}
}

func TestBalanceFromMirror(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"tokens": [
				{"token_id": "0.0.2002", "balance": 75},
				{"token_id": "0.0.2003", "balance": 1}
			],
			"links": {"next": null}
		}`))
	}))
	t.Cleanup(server.Close)

	client := newTestTokenClient(t, server.URL)

	balance, err := client.Balance(context.Background(), "0.0.1001", "0.0.2002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 75 {
		t.Fatalf("unexpected balance %d", balance)
	}
}

func TestBalanceNotAssociated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tokens": [], "links": {"next": null}}`))
	}))
	t.Cleanup(server.Close)

	client := newTestTokenClient(t, server.URL)

	_, err := client.Balance(context.Background(), "0.0.1001", "0.0.2002")
	if err == nil {
		t.Fatal("expected error for unassociated account")
	}
	var notAssociated NotAssociatedError
	if !errors.As(err, &notAssociated) {
		t.Fatalf("expected NotAssociatedError, got %T", err)
	}
	if notAssociated.TokenID != "0.0.2002" {
		t.Fatalf("unexpected token in error: %q", notAssociated.TokenID)
	}
}
