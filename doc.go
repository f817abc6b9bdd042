// HTSKit for Go is a toolkit for the Hedera Token Service (HTS). It wraps
// the Hedera Go SDK with small, focused packages for the common token
// workflows: creating funded accounts, deploying fungible tokens, minting
// and transferring NFTs, and issuing soulbound (non-transferable) badge
// tokens.
//
// # Packages
//
//   - pkg/account: account creation and balance queries
//   - pkg/token: fungible token create/mint/associate/transfer
//   - pkg/nft: NFT collection creation, batch minting, transfers
//   - pkg/soulbound: frozen-by-default badge tokens with issue/revoke
//   - pkg/submit: bounded-retry transaction submission
//   - pkg/ticker: symbol derivation from human-readable names
//   - pkg/mirror: mirror node REST queries for accounts, tokens, and NFTs
//   - pkg/shared: operator credentials, network selection, key parsing
//
// # Getting Started
//
// Export HEDERA_ACCOUNT_ID and HEDERA_PRIVATE_KEY (or place them in a
// .env file), then see the runnable programs under examples/.
//
// # Installation
//
//	go get github.com/ledgerline/htskit-go@latest
package htskit_go
