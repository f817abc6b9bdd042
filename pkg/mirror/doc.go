// Package mirror provides a Hedera Mirror Node REST client for the
// read-only state HTSKit cares about: account balances, token
// relationships, token metadata, and NFT holdings. The mirror node trails
// consensus by a few seconds, so these queries are the post-consensus
// verification side of the write paths in pkg/token, pkg/nft, and
// pkg/soulbound.
package mirror
