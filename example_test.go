package clusterlab_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/clusterlab/clusterlab"
	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/algorithm/hardcluster"
	"github.com/clusterlab/clusterlab/dataset"
	"github.com/clusterlab/clusterlab/model"
	"github.com/clusterlab/clusterlab/resolve"
)

// Example_load demonstrates parsing a mixed CSV dataset into a typed table.
func Example_load() {
	wb := clusterlab.New(hardcluster.New(1))

	err := wb.LoadReader(strings.NewReader("1,2,a\n3,4,b\n5,6,a"), dataset.ModePlain)
	if err != nil {
		log.Fatal(err)
	}

	t := wb.Table()
	fmt.Printf("rows=%d features=%d\n", t.Len(), t.Features())
	// Output: rows=3 features=3
}

// Example_resolve demonstrates turning a mixed table into a numeric matrix
// under different non-numeric resolution policies.
func Example_resolve() {
	table, err := dataset.ParseString("1,2,a\n3,4,b\n5,6,a", dataset.ModePlain)
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range []resolve.Policy{resolve.CategoryIndex, resolve.ExcludeFeatures} {
		res, err := resolve.Resolve(table, p)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %dx%d\n", p, len(res.Matrix), len(res.Matrix[0]))
	}
	// Output:
	// category-index: 3x3
	// exclude-features: 3x2
}

// Example_cluster demonstrates submitting a clustering job and accepting the
// result into the comparison state.
func Example_cluster() {
	wb := clusterlab.New(hardcluster.New(1))

	data := "0.1,0.2\n0.0,0.1\n0.2,0.0\n5.0,5.1\n5.2,5.0\n5.1,5.2"
	if err := wb.LoadReader(strings.NewReader(data), dataset.ModePlain); err != nil {
		log.Fatal(err)
	}

	id, err := wb.Submit(model.Config{
		Algorithm: algorithm.DBSCAN,
		Params:    algorithm.Params{Epsilon: 1.0, MinSamples: 2},
		Policy:    resolve.ZeroFill,
	})
	if err != nil {
		log.Fatal(err)
	}

	idx, err := wb.Accept(context.Background(), id)
	if err != nil {
		log.Fatal(err)
	}

	v, _ := wb.Views().View(idx)
	fmt.Printf("clusters=%d points=%d\n", v.Result.Clusters, len(v.Result.Assignment))
	// Output: clusters=2 points=6
}
