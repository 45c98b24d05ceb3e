// Package candidate scans text for every reversible edit pattern and emits
// the raw candidate branchpoints, before masking, trimming and selection.
//
// Local patterns (one bit per occurrence):
//   - a tab becomes four spaces
//   - a contraction becomes its expansion and vice versa (fixed lexicon)
//   - RIGHT-TO-LEFT MARK + LEFT-TO-RIGHT MARK inserted before a '.' that is followed by whitespace
//   - WORD JOINER inserted after an uppercase letter
//   - ZERO WIDTH SPACE inserted after a letter that is followed by whitespace
//
// Global patterns (one bit for every occurrence, in lockstep):
//   - every '"' becomes '\''
//   - every standalone digit 1-9 becomes its English word
//
// A global bit can be read back from any fragment of the carrier that holds
// at least one occurrence of its pattern.
package candidate
