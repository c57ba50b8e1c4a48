package summarizer

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// Damping is the weight of the uniform restart in each update
	Damping = 0.15
	// Tolerance is the L1 change between iterations that counts as converged
	Tolerance = 1e-6
	// MaxIterations caps the power iteration
	MaxIterations = 500
	// ScoreEpsilon is the relative difference below which two scores tie
	ScoreEpsilon = 1e-9
)

// TransitionMatrix row-normalizes sim. A row without any similarity spreads
// its weight uniformly over the other sentences.
func TransitionMatrix(sim mat.Symmetric) *mat.Dense {
	n := sim.SymmetricDim()
	t := mat.NewDense(n, n, nil)
	row := make([]float64, n)

	for i := 0; i < n; i++ {
		mat.Row(row, i, sim)
		row[i] = 0

		if sum := floats.Sum(row); sum > 0 {
			floats.Scale(1/sum, row)
		} else {
			for j := range row {
				row[j] = 0
				if j != i {
					row[j] = 1 / float64(n-1)
				}
			}
		}

		t.SetRow(i, row)
	}

	return t
}

// Centrality runs the damped power iteration over the similarity graph.
// Each round sets p' = Damping/n + (1-Damping) * T^T p until the L1 change
// drops below Tolerance or MaxIterations is reached.
func Centrality(sim mat.Symmetric) Scores {
	return centrality(sim, MaxIterations, Tolerance)
}

func centrality(sim mat.Symmetric, maxIterations int, tolerance float64) Scores {
	n := sim.SymmetricDim()
	if n == 1 {
		return Scores{Values: []float64{1}, Converged: true}
	}

	t := TransitionMatrix(sim)

	p := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		p.SetVec(i, 1/float64(n))
	}
	next := mat.NewVecDense(n, nil)
	restart := Damping / float64(n)

	var scores Scores
	for scores.Iterations < maxIterations {
		scores.Iterations++

		next.MulVec(t.T(), p)
		for i := 0; i < n; i++ {
			next.SetVec(i, restart+(1-Damping)*next.AtVec(i))
		}

		delta := floats.Distance(next.RawVector().Data, p.RawVector().Data, 1)
		p.CopyVec(next)

		if delta < tolerance {
			scores.Converged = true
			break
		}
	}

	scores.Values = make([]float64, n)
	copy(scores.Values, p.RawVector().Data)
	return scores
}

// sameScore treats scores that differ only by summation order as equal
func sameScore(a, b float64) bool {
	return math.Abs(a-b) <= ScoreEpsilon*math.Max(math.Abs(a), math.Abs(b))
}

// Select picks the k highest scoring sentences, ties going to the earlier
// position, and returns them in document order
func Select(doc Document, scores []float64, k int) []Ranked {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		if !sameScore(scores[a], scores[b]) {
			return cmp.Compare(scores[b], scores[a])
		}
		return cmp.Compare(a, b)
	})

	if k < len(order) {
		order = order[:k]
	}
	slices.Sort(order)

	selected := make([]Ranked, 0, len(order))
	for _, idx := range order {
		s := doc.Sentences[idx]
		selected = append(selected, Ranked{
			Position: s.Position,
			Text:     s.Text,
			Score:    scores[idx],
		})
	}

	return selected
}
