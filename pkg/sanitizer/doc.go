// Package sanitizer provides input normalization for raw ISBN lines.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. They never fail: input that normalizes to nothing yields an
// empty string, which later stages reject.
//
// Normalization includes:
//   - Whitespace: remove every space, tab, carriage return and newline, keeping
//     the relative order of all other characters
//   - ISBN lines: whitespace removal followed by nothing else; delimiters are left
//     for the tokenizer
package sanitizer
