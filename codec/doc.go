// Package codec hides bit strings in text and recovers them.
//
// Generate runs the branchpoint pipeline over a carrier text: candidate
// generation, region masking, normalization and mutual-exclusion selection.
// The resulting branchpoint.Set is canonical, so encoder and decoder derive
// the same set from the same original text.
//
// Encoder applies the edits of every branchpoint whose bit is 1. DecodeFull
// recovers the bits from a whole encoded text; DecodePartial recovers what it
// can from an excerpt, reporting format.Unknown for branchpoints without
// visible evidence.
//
// All offsets are rune offsets. Every function is safe for concurrent use.
package codec
