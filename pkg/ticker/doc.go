// Package ticker derives short uppercase token symbols from human-readable
// names. The heuristic takes the first letter of each word plus any
// camel-case humps, then pads with 'X' to a minimum of three characters,
// so "Solar Credits" becomes "SCX" and "MyToken" becomes "MTX".
package ticker
