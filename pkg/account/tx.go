package account

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildAccountCreateTx builds an unsigned account create transaction for
// the given public key.
func BuildAccountCreateTx(params AccountCreateTxParams) (*hedera.AccountCreateTransaction, error) {
	if params.PublicKey.String() == "" {
		return nil, fmt.Errorf("public key is required")
	}

	initialBalance := params.InitialBalanceHbar
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalanceHbar
	}

	transaction := hedera.NewAccountCreateTransaction().
		SetKey(params.PublicKey).
		SetInitialBalance(hedera.NewHbar(initialBalance))

	if params.MaxAutomaticTokenAssociations > 0 {
		transaction.SetMaxAutomaticTokenAssociations(params.MaxAutomaticTokenAssociations)
	}
	if trimmed := strings.TrimSpace(params.AccountMemo); trimmed != "" {
		transaction.SetAccountMemo(trimmed)
	}
	if trimmed := strings.TrimSpace(params.TransactionMemo); trimmed != "" {
		transaction.SetTransactionMemo(trimmed)
	}

	return transaction, nil
}
