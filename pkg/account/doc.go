// Package account creates funded Hedera accounts and queries their
// balances. Created accounts get a freshly generated key pair (Ed25519 by
// default) which is returned to the caller and never stored.
package account
