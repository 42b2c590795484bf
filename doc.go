// Package clusterlab is the core of a data clustering comparison tool.
//
// It loads a tabular dataset, runs independently configured clustering jobs
// against it under configurable non-numeric handling policies, and maintains
// the linked multi-view state needed to compare clusterings side by side.
// The numeric clustering itself is an external capability behind the
// algorithm.Capability interface; rendering is an external consumer of view
// snapshots.
//
// # Quick Start
//
//	ctx := context.Background()
//	wb := clusterlab.New(hardcluster.New(4))
//	if err := wb.Load("iris.csv", dataset.ModeTrailingLabel); err != nil {
//	    panic(err)
//	}
//
//	kmeans, _ := wb.Submit(model.Config{
//	    Algorithm: algorithm.KMeans,
//	    Params:    algorithm.Params{Clusters: 3},
//	    Policy:    resolve.CategoryIndex,
//	})
//	dbscan, _ := wb.Submit(model.Config{
//	    Algorithm: algorithm.DBSCAN,
//	    Params:    algorithm.Params{Epsilon: 0.5, MinSamples: 5},
//	    Policy:    resolve.ExcludePoints,
//	})
//
//	wb.Accept(ctx, kmeans) // view 0
//	wb.Accept(ctx, dbscan) // view 1 (failed placeholder if the job failed)
//
//	wb.RenderView(os.Stdout, 0, "K-Means")
//
// # Pipeline
//
// raw file -> dataset.Parse -> typed table -> resolve.Resolve (per job) ->
// numeric matrix -> job.Run -> label assignment -> compare.ViewState ->
// rendering (external).
//
// Jobs never share mutable state: each resolves its own matrix, so jobs with
// different policies run concurrently without coordination, and a failed or
// misconfigured job cannot disturb its siblings or prior views.
package clusterlab
