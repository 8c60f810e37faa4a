// Package bitpack packs fixed-width unsigned indices into 64-bit words.
//
// Fields never straddle a word boundary: each word holds
// floor(64/bitWidth) slots, filled from the least-significant bit upward.
// The remaining high bits of a word are padding and are always zero.
//
//	word 0: | pad | slot k-1 | ... | slot 1 | slot 0 |
//	word 1: | pad | slot 2k-1| ... | slot k+1 | slot k |
//
// The package is pure arithmetic. It knows nothing about what the
// indices mean.
package bitpack
