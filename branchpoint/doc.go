// Package branchpoint defines the reversible-edit data model and the two
// pure stages that turn raw candidates into a usable bit channel.
//
// # Data Model
//
//   - Span: half-open rune offset range [Start, End) into the original text.
//     Start == End is a zero-width insertion point.
//   - Edit: a Span plus the Original slice and its Replacement.
//   - Branchpoint: edits applied or reverted together as one bit. Local
//     branchpoints hold exactly one edit; global ones hold every occurrence
//     of a pattern.
//   - Set: the ordered, non-overlapping branchpoints of a text. Globals come
//     first, locals follow ordered by the start of their first edit.
//
// # Stages
//
// Normalize drops edits that intersect unchangeable regions and trims each
// surviving edit to its minimal differing substring. SelectExclusive then
// resolves overlaps greedily so that no two edits of different branchpoints
// overlap or touch.
package branchpoint
