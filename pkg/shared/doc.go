// Package shared provides the cross-cutting utilities used by HTSKit:
// network normalization, operator credential loading from the environment
// or .env files, Hedera client construction, private key parsing, and the
// console logger used by the example programs.
//
// # Environment Variables
//
// Operator credentials are read from HEDERA_ACCOUNT_ID and
// HEDERA_PRIVATE_KEY (HEDERA_OPERATOR_ID / HEDERA_OPERATOR_KEY and
// OPERATOR_ID / OPERATOR_KEY are accepted as fallbacks). The target
// network comes from HEDERA_NETWORK and defaults to testnet.
package shared
