// Package testutil provides shared helpers for clusterlab tests: table
// literals, scripted clustering capabilities, and a seeded thread-safe RNG
// for generating matrices.
package testutil
