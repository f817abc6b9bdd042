// Package submit wraps Hedera transaction execution with a bounded retry
// loop. The network answers with a transient BUSY status when a node is
// momentarily overloaded; submit retries those responses with exponential
// backoff, up to a fixed attempt budget (20 by default), and propagates
// every other failure immediately.
//
// Domain packages freeze and sign their transactions, then hand them to
// Transaction (or a custom Operation to Submit) and check the receipt via
// Receipt.
package submit
