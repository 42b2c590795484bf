// Package algorithm declares the closed set of supported clustering
// algorithm families, their parameter schemas, and the external capability
// interface the numeric work is delegated to.
//
// The set is a tagged variant, not runtime dispatch: adding an algorithm
// means adding an ID and its parameter schema here, plus support in a
// Capability implementation.
package algorithm
