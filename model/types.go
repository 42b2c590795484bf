package model

import (
	"fmt"
	"sort"

	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/resolve"
)

// JobID identifies a submitted clustering job within one orchestrator.
// IDs are assigned monotonically and never reused.
type JobID uint64

// String returns a string representation of the JobID.
func (id JobID) String() string {
	return fmt.Sprintf("job(%d)", uint64(id))
}

// ClusterID is a dense, 0-based cluster identifier within a single result.
// ClusterIDs are not comparable across results: cluster 0 of one algorithm
// has no defined correspondence to cluster 0 of another.
type ClusterID int

// Noise is the distinguished assignment for points that belong to no
// cluster. Only density-based algorithm families emit it.
const Noise ClusterID = -1

// IsNoise reports whether the ClusterID is the noise marker.
func (c ClusterID) IsNoise() bool { return c == Noise }

// Assignment maps an ORIGINAL row index of the typed table to the cluster
// the point was assigned to. Its key set is exactly the row-index map of the
// matrix the job ran on; rows excluded by the resolver policy have no entry.
type Assignment map[int]ClusterID

// Rows returns the assigned original row indices in ascending order.
func (a Assignment) Rows() []int {
	rows := make([]int, 0, len(a))
	for r := range a {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// Clusters returns the number of distinct non-noise clusters.
func (a Assignment) Clusters() int {
	n := 0
	for _, c := range a {
		if !c.IsNoise() && int(c) >= n {
			n = int(c) + 1
		}
	}
	return n
}

// HasNoise reports whether any point was assigned the noise marker.
func (a Assignment) HasNoise() bool {
	for _, c := range a {
		if c.IsNoise() {
			return true
		}
	}
	return false
}

// Config is one clustering configuration: which algorithm to run, with which
// parameters, against which non-numeric resolution of the typed table.
type Config struct {
	Algorithm algorithm.ID
	Params    algorithm.Params
	Policy    resolve.Policy
}

// String returns a short human-readable form, e.g. "kmeans/category-index".
func (c Config) String() string {
	return c.Algorithm.String() + "/" + c.Policy.String()
}

// Result is the immutable outcome of a completed clustering job.
type Result struct {
	// Job is the orchestrator-assigned identifier the result belongs to.
	Job JobID

	// Config is the configuration the job ran with.
	Config Config

	// RowMap holds the original row indices that survived the resolver
	// policy, in ascending original order. Row i of the job's matrix
	// corresponds to original row RowMap[i].
	RowMap []int

	// ColMap holds the original column indices that survived the resolver
	// policy, in ascending original order.
	ColMap []int

	// Assignment maps each surviving original row to its cluster.
	Assignment Assignment

	// Clusters is the number of distinct non-noise clusters found.
	Clusters int
}

// Status is the lifecycle state of a job.
// Pending -> Running -> {Completed, Failed, Cancelled}; terminal states are
// final and immutable.
type Status uint8

const (
	// StatusPending means the job is queued but not yet dispatched.
	StatusPending Status = iota
	// StatusRunning means the job is resolving its matrix or waiting on the
	// clustering capability.
	StatusRunning
	// StatusCompleted means the job produced a Result.
	StatusCompleted
	// StatusFailed means the job terminated with an error.
	StatusFailed
	// StatusCancelled means the job was cancelled before completion.
	StatusCancelled
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}
