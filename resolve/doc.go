// Package resolve converts a typed table into a rectangular numeric matrix
// under one of four non-numeric handling policies.
//
// Resolution is a pure function of (table, policy): the same inputs always
// produce bit-identical matrices and index maps. Category codes are assigned
// in first-appearance order per column, never from map iteration.
package resolve
