// Package nft creates NFT collections and mints, transfers, and lists
// their serials. Batch mints are capped at 10 serials per transaction and
// 100 metadata bytes per serial, the HTS limits.
package nft
