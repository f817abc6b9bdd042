package nft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func newTestNFTClient(t *testing.T, mirrorURL string) *Client {
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

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(ClientConfig{Network: "invalid"}); err == nil {
		t.Fatal("expected error for bad network")
	}
	if _, err := NewClient(ClientConfig{Network: "testnet"}); err == nil {
		t.Fatal("expected error for missing operator ID")
	}
	if _, err := NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "0.0.1"}); err == nil {
		t.Fatal("expected error for missing operator key")
	}
	if _, err := NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "0.0.1", OperatorPrivateKey: "bad"}); err == nil {
		t.Fatal("expected error for malformed operator key")
	}
}

func TestCreateCollectionValidation(t *testing.T) {
	client := newTestNFTClient(t, "")

	if _, err := client.CreateCollection(context.Background(), CreateCollectionOptions{}); err == nil {
		t.Fatal("expected error for empty name")
	}

	_, err := client.CreateCollection(context.Background(), CreateCollectionOptions{
		Name:              "Badge Collection",
		TreasuryAccountID: "0.0.2",
	})
	if err == nil {
		t.Fatal("expected error for non-operator treasury without key")
	}
}

func TestMintValidation(t *testing.T) {
	client := newTestNFTClient(t, "")

	if _, err := client.Mint(context.Background(), MintOptions{}); err == nil {
		t.Fatal("expected error for missing token ID")
	}
	if _, err := client.Mint(context.Background(), MintOptions{TokenID: "0.0.3003"}); err == nil {
		t.Fatal("expected error for empty metadata")
	}
}

func TestOwnedBy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"nfts": [{"account_id": "0.0.1001", "token_id": "0.0.3003", "serial_number": 7, "metadata": "aXBmczovL2JhZGdl"}],
			"links": {"next": null}
		}`))
	}))
	t.Cleanup(server.Close)

	client := newTestNFTClient(t, server.URL)

	nfts, err := client.OwnedBy(context.Background(), "0.0.1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nfts) != 1 || nfts[0].SerialNumber != 7 {
		t.Fatalf("unexpected NFTs %+v", nfts)
	}
}
