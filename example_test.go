package proxfit_test

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/odakyildiz/proxfit"
	"github.com/odakyildiz/proxfit/dataset"
	"github.com/odakyildiz/proxfit/estimator"
)

// ExampleFit walks the estimator through a tiny dataset in a fixed
// sample order and prints the resulting estimate.
func ExampleFit() {
	// Three samples in the plane: columns of x, one label each.
	x := mat.NewDense(2, 3, []float64{
		1, 0, 1,
		0, 1, 1,
	})
	ds, err := dataset.New(x, []float64{1, 1, 2})
	if err != nil {
		log.Fatal(err)
	}

	est, err := estimator.New(2, 1.0)
	if err != nil {
		log.Fatal(err)
	}

	result, err := proxfit.Fit(ds, est, &scriptedSampler{indices: []int{0, 1, 2}}, 3,
		proxfit.WithReference([]float64{1, 1}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("theta = (%.4f, %.4f)\n", result.Theta[0], result.Theta[1])
	fmt.Printf("steps = %d, trace entries = %d\n", result.Steps, result.Trace.Len())

	// Output:
	// theta = (0.8333, 0.8333)
	// steps = 3, trace entries = 3
}
