// Package model defines core types shared across clusterlab.
//
// # Identity Types
//
//   - JobID: Orchestrator-assigned identifier for a submitted job (uint64)
//   - ClusterID: Dense, 0-based cluster identifier within one result
//   - Noise: Distinguished ClusterID for points outside every cluster
//
// # Data Types
//
//   - Assignment: Original-row index -> ClusterID for surviving rows
//   - Config: One clustering configuration (algorithm, parameters, policy)
//   - Result: Immutable outcome of a completed job
//   - Status: Job lifecycle state (Pending -> Running -> terminal)
package model
