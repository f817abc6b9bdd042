package shared

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const testPrivateKey = "302e020100300506032b65700422042091132178e72057a1d7528025956fe39b0b847f200ab59b2fdd367017f3087137"

var operatorEnvKeys = []string{
	"HEDERA_NETWORK",
	"NETWORK",
	"HEDERA_ACCOUNT_ID",
	"HEDERA_OPERATOR_ID",
	"OPERATOR_ID",
	"HEDERA_PRIVATE_KEY",
	"HEDERA_OPERATOR_KEY",
	"OPERATOR_KEY",
}

func resetOperatorEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})
	for _, key := range operatorEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestOperatorConfigFromEnv(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.1234")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.1234" {
		t.Fatalf("unexpected account ID %q", config.AccountID)
	}
	if config.PrivateKey != testPrivateKey {
		t.Fatal("unexpected private key")
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected testnet default, got %q", config.Network)
	}
}

func TestOperatorConfigFromEnvFallbackKeys(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("OPERATOR_ID", "0.0.42")
	t.Setenv("OPERATOR_KEY", testPrivateKey)
	t.Setenv("HEDERA_NETWORK", "mainnet")

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.42" {
		t.Fatalf("unexpected account ID %q", config.AccountID)
	}
	if config.Network != NetworkMainnet {
		t.Fatalf("expected mainnet, got %q", config.Network)
	}
}

func TestOperatorConfigFromEnvMissingAccount(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing account ID")
	}
}

func TestOperatorConfigFromEnvMissingKey(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.1234")

	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing private key")
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	resetOperatorEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\n" +
		"export HEDERA_ACCOUNT_ID=0.0.777\n" +
		"HEDERA_PRIVATE_KEY=\"" + testPrivateKey + "\"\n" +
		"INVALID KEY=skipped\n" +
		"=nokey\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	if !loadDotEnvFile(path) {
		t.Fatal("expected .env values to load")
	}
	if os.Getenv("HEDERA_ACCOUNT_ID") != "0.0.777" {
		t.Fatalf("unexpected account ID %q", os.Getenv("HEDERA_ACCOUNT_ID"))
	}
	if os.Getenv("HEDERA_PRIVATE_KEY") != testPrivateKey {
		t.Fatal("expected quoted private key to be unquoted")
	}
}

func TestLoadDotEnvFileDoesNotOverride(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.1")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HEDERA_ACCOUNT_ID=0.0.2\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	loadDotEnvFile(path)
	if os.Getenv("HEDERA_ACCOUNT_ID") != "0.0.1" {
		t.Fatal("expected existing environment value to win")
	}
}

func TestIsValidEnvKey(t *testing.T) {
	valid := []string{"A", "ABC", "a_b", "MY_VAR", "A1", "HEDERA_NETWORK", "_LEADING"}
	for _, key := range valid {
		if !isValidEnvKey(key) {
			t.Fatalf("expected %q to be valid", key)
		}
	}

	invalid := []string{"", "1ABC", "A B", "A-B", "A.B", "A=B"}
	for _, key := range invalid {
		if isValidEnvKey(key) {
			t.Fatalf("expected %q to be invalid", key)
		}
	}
}

func TestParsePrivateKeyEd25519(t *testing.T) {
	key, err := ParsePrivateKey(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.String() == "" {
		t.Fatal("expected parsed key")
	}
}

func TestParsePrivateKeyECDSA(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	key, err := ParsePrivateKey(generated.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.String() == "" {
		t.Fatal("expected parsed key")
	}
}

func TestParsePrivateKeyInvalid(t *testing.T) {
	if _, err := ParsePrivateKey(""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, err := ParsePrivateKey("not-a-key"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}
