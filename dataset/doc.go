// Package dataset turns raw delimited text into an immutable typed table.
//
// A table is parsed once per input file and then shared read-only by every
// clustering job. Each cell is classified as numeric or kept as a verbatim
// non-numeric token; converting tokens into numbers is the resolve package's
// concern, not the parser's.
//
// The trailing label column is never auto-detected: labels can look numeric,
// so the caller must state the parse mode explicitly.
package dataset
