package domain

import "github.com/shopspring/decimal"

// Amounts are written to JSON as numbers, not strings. Every package that
// encodes results imports domain, so the wire format is the same for the CLI,
// the HTTP API and library callers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
