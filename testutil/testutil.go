package testutil

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/dataset"
)

// MustTable parses a table literal, failing the test on error.
func MustTable(t *testing.T, s string, mode dataset.Mode) *dataset.Table {
	t.Helper()
	table, err := dataset.ParseString(s, mode)
	if err != nil {
		t.Fatalf("parse table literal: %v", err)
	}
	return table
}

// ScriptedCapability is an algorithm.Capability returning a fixed raw
// output or error. If Block is non-nil, Cluster waits until Block is closed
// or the context is cancelled, which lets tests hold a job in Running.
type ScriptedCapability struct {
	Output *algorithm.RawOutput
	Err    error
	Block  chan struct{}

	// Calls counts Cluster invocations, including blocked ones.
	Calls atomic.Int32

	mu         sync.Mutex
	lastID     algorithm.ID
	lastParams algorithm.Params
}

var _ algorithm.Capability = (*ScriptedCapability)(nil)

// Last returns the algorithm and parameters of the most recent call.
func (c *ScriptedCapability) Last() (algorithm.ID, algorithm.Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastID, c.lastParams
}

// Cluster implements algorithm.Capability.
func (c *ScriptedCapability) Cluster(ctx context.Context, matrix [][]float64, id algorithm.ID, params algorithm.Params) (*algorithm.RawOutput, error) {
	c.Calls.Add(1)
	c.mu.Lock()
	c.lastID, c.lastParams = id, params
	c.mu.Unlock()

	if c.Block != nil {
		select {
		case <-c.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if c.Err != nil {
		return nil, c.Err
	}
	if c.Output != nil {
		return c.Output, nil
	}

	// Default script: everything in one cluster, 0-based labels.
	labels := make([]int, len(matrix))
	return &algorithm.RawOutput{Labels: labels, NoiseBelow: 0}, nil
}

// RoundRobinCapability assigns matrix rows to K clusters in row order.
// Deterministic, so tests can predict the normalized assignment.
type RoundRobinCapability struct {
	K int
}

var _ algorithm.Capability = (*RoundRobinCapability)(nil)

// Cluster implements algorithm.Capability.
func (c *RoundRobinCapability) Cluster(_ context.Context, matrix [][]float64, _ algorithm.ID, _ algorithm.Params) (*algorithm.RawOutput, error) {
	k := c.K
	if k < 1 {
		k = 1
	}
	labels := make([]int, len(matrix))
	for i := range labels {
		labels[i] = i % k
	}
	return &algorithm.RawOutput{Labels: labels, NoiseBelow: 0}, nil
}

// RNG is a seeded, thread-safe random number generator.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Matrix generates a rows x cols matrix of values in [0, 1).
func (r *RNG) Matrix(rows, cols int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = r.rand.Float64()
		}
		m[i] = row
	}
	return m
}
