package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	DefaultMaxAttempts     = 20
	DefaultInitialInterval = 250 * time.Millisecond
	DefaultMaxInterval     = 8 * time.Second
	DefaultMultiplier      = 2.0
)

// Options controls the retry budget and pacing for a submission.
type Options struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func (options Options) withDefaults() Options {
	if options.MaxAttempts <= 0 {
		options.MaxAttempts = DefaultMaxAttempts
	}
	if options.InitialInterval <= 0 {
		options.InitialInterval = DefaultInitialInterval
	}
	if options.MaxInterval <= 0 {
		options.MaxInterval = DefaultMaxInterval
	}
	if options.Multiplier <= 1 {
		options.Multiplier = DefaultMultiplier
	}
	return options
}

// Operation submits a transaction once and reports the network response.
type Operation func(ctx context.Context) (hedera.TransactionResponse, error)

// Submit invokes the operation until it succeeds, fails with a
// non-transient error, or the attempt budget runs out. Only BUSY responses
// are retried; the delay between attempts follows an exponential backoff
// policy bounded by Options.MaxInterval.
func Submit(ctx context.Context, operation Operation, options Options) (hedera.TransactionResponse, error) {
	options = options.withDefaults()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = options.InitialInterval
	policy.MaxInterval = options.MaxInterval
	policy.Multiplier = options.Multiplier
	policy.MaxElapsedTime = 0
	policy.Reset()

	var lastResponse hedera.TransactionResponse
	for attempt := 1; ; attempt++ {
		response, err := operation(ctx)
		if err == nil {
			return response, nil
		}
		lastResponse = response

		if !IsBusy(err) {
			return lastResponse, fmt.Errorf("transaction submission failed: %w", err)
		}
		if attempt >= options.MaxAttempts {
			return lastResponse, RetriesExhaustedError{Attempts: attempt, Last: err}
		}

		wait := policy.NextBackOff()
		if wait == backoff.Stop {
			wait = options.MaxInterval
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return lastResponse, ctx.Err()
		case <-timer.C:
		}
	}
}

// Transaction executes a frozen, signed transaction through Submit.
func Transaction(
	ctx context.Context,
	client *hedera.Client,
	transaction hedera.TransactionInterface,
	options Options,
) (hedera.TransactionResponse, error) {
	return Submit(ctx, func(context.Context) (hedera.TransactionResponse, error) {
		return hedera.TransactionExecute(transaction, client)
	}, options)
}

// Receipt fetches the receipt for a response and rejects any status other
// than SUCCESS.
func Receipt(
	client *hedera.Client,
	response hedera.TransactionResponse,
) (hedera.TransactionReceipt, error) {
	receipt, err := response.GetReceipt(client)
	if err != nil {
		return receipt, fmt.Errorf("failed to retrieve receipt: %w", err)
	}
	if receipt.Status != hedera.StatusSuccess {
		return receipt, ReceiptStatusError{Status: receipt.Status}
	}
	return receipt, nil
}

// IsBusy reports whether an error is the network's transient BUSY
// response, either at precheck or on the receipt.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}

	var precheck hedera.ErrHederaPreCheckStatus
	if errors.As(err, &precheck) {
		return precheck.Status == hedera.StatusBusy
	}

	var receiptStatus hedera.ErrHederaReceiptStatus
	if errors.As(err, &receiptStatus) {
		return receiptStatus.Status == hedera.StatusBusy
	}

	return false
}
