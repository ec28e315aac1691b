// Package matrix_test provides benchmarks for the gonum bridge and the
// per-line statistics, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkD *mat.Dense
	sinkV []float64
	sinkR grid.Reader[float64]
)

func fillDenseRand(b *testing.B, n int, seed int64) *mat.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return mat.NewDense(n, n, data)
}

func BenchmarkFromDense_Contiguous(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			d := fillDenseRand(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.FromDense(d)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}

func BenchmarkToDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := matrix.View(fillDenseRand(b, n, 4242))
			if err != nil {
				b.Fatal(err)
			}
			cm := g.Relayout(grid.ColMajor)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.ToDense(cm)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

// BenchmarkColMeans compares the strided and contiguous column paths.
func BenchmarkColMeans(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		g, err := matrix.View(fillDenseRand(b, n, 7))
		if err != nil {
			b.Fatal(err)
		}
		for _, r := range []struct {
			name string
			g    *grid.Grid[float64]
		}{{"row-major", g}, {"col-major", g.Relayout(grid.ColMajor)}} {
			b.Run(fmt.Sprintf("n=%d/%s", n, r.name), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					v, err := matrix.ColMeans(r.g)
					if err != nil {
						b.Fatal(err)
					}
					sinkV = v
				}
			})
		}
	}
}

// BenchmarkCenterColumns mutates through strided ColsMut on a row-major view.
func BenchmarkCenterColumns(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := matrix.View(fillDenseRand(b, n, 99))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.CenterColumns(g)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}
