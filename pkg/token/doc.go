// Package token deploys and operates fungible HTS tokens: create, supply
// mint, account association, transfers, and mirror-backed balance lookups.
// Token symbols left empty at creation are derived from the token name via
// pkg/ticker, and every submission runs through the bounded retry loop in
// pkg/submit.
package token
