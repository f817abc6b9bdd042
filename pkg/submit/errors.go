package submit

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// RetriesExhaustedError reports that every attempt in the retry budget
// came back BUSY.
type RetriesExhaustedError struct {
	Attempts int
	Last     error
}

func (errorValue RetriesExhaustedError) Error() string {
	return fmt.Sprintf("transaction still busy after %d attempts: %v", errorValue.Attempts, errorValue.Last)
}

func (errorValue RetriesExhaustedError) Unwrap() error {
	return errorValue.Last
}

// ReceiptStatusError reports a receipt that came back with a status other
// than SUCCESS.
type ReceiptStatusError struct {
	Status hedera.Status
}

func (errorValue ReceiptStatusError) Error() string {
	return fmt.Sprintf("transaction failed with status %s", errorValue.Status.String())
}
