// Package orchestrate owns the set of active clustering jobs.
//
// Each submitted job resolves its own numeric matrix under its declared
// policy and runs independently on a semaphore-gated worker; one job's
// failure never aborts a sibling. Job states move Pending -> Running ->
// {Completed, Failed, Cancelled}; terminal states are final.
//
// Cancellation is cooperative: Cancel marks the job and cancels its
// context, and a result arriving after cancellation is discarded. No
// operation carries an implicit timeout: a hanging capability leaves the
// job Running until the caller imposes its own bound.
package orchestrate
