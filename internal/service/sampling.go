package service

import (
	"math"
	"math/rand/v2"
	"sort"
)

// weightedTable implementa muestreo discreto ponderado con pesos acumulados
// y un unico sorteo uniforme.
type weightedTable[T any] struct {
	values     []T
	cumulative []float64
}

func newWeightedTable[T any](values []T, weights []float64) weightedTable[T] {
	if len(values) == 0 || len(values) != len(weights) {
		panic("weighted table: values and weights must be non-empty and aligned")
	}
	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w < 0 {
			panic("weighted table: negative weight")
		}
		total += w
		cumulative[i] = total
	}
	return weightedTable[T]{values: values, cumulative: cumulative}
}

func (t weightedTable[T]) pick(r *rand.Rand) T {
	total := t.cumulative[len(t.cumulative)-1]
	u := r.Float64() * total
	i := sort.Search(len(t.cumulative), func(i int) bool { return t.cumulative[i] > u })
	if i >= len(t.values) {
		i = len(t.values) - 1
	}
	return t.values[i]
}

func uniformChoice[T any](r *rand.Rand, values []T) T {
	return values[r.IntN(len(values))]
}

// expInt trunca una muestra exponencial de media mean.
func expInt(r *rand.Rand, mean float64) int {
	return int(r.ExpFloat64() * mean)
}

// poisson usa el metodo de Knuth; suficiente para lambdas chicos.
func poisson(r *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= r.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

func uniformRange(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
