package summarizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/nguyentantai21042004/recap/internal/language"
)

func profiles(t *testing.T) language.Registry {
	t.Helper()
	r, err := language.New(nil)
	require.NoError(t, err)
	return r
}

func TestSegment(t *testing.T) {
	plain := profiles(t).Lookup("plain")

	tests := []struct {
		name  string
		text  string
		texts []string
		words [][]string
	}{
		{"empty", "", nil, nil},
		{"whitespace", " \n\t ", nil, nil},
		{
			"two sentences",
			"Hello, world! It's 5 o'clock.",
			[]string{"Hello, world!", "It's 5 o'clock."},
			[][]string{{"Hello", "world"}, {"It", "s", "5", "o", "clock"}},
		},
		{
			"punctuation only sentence kept",
			"Yes. ... Fine.",
			[]string{"Yes.", "...", "Fine."},
			[][]string{{"Yes"}, nil, {"Fine"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, plain)
			require.Len(t, got, len(tt.texts))
			for i, s := range got {
				assert.Equal(t, i, s.Position)
				assert.Equal(t, tt.texts[i], s.Text)
				assert.Equal(t, tt.words[i], s.Words)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	r := profiles(t)

	tests := []struct {
		name     string
		language string
		words    []string
		want     []string
	}{
		{"lowercase and stem", "english", []string{"Running", "DOGS"}, []string{"run", "dog"}},
		{"stop-words removed", "english", []string{"The", "cat", "and", "the", "hat"}, []string{"cat", "hat"}},
		{"multiplicity kept", "english", []string{"cats", "cat"}, []string{"cat", "cat"}},
		{"all stop-words", "english", []string{"the", "a", "an"}, []string{}},
		{"unknown language only lowercases", "klingon", []string{"The", "Running"}, []string{"the", "running"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.words, r.Lookup(tt.language)))
		})
	}
}

func TestBuildMatrix(t *testing.T) {
	plain := profiles(t).Lookup("plain")
	doc := NewDocument("red green blue. red green blue. red yellow pink. orange violet. the", plain)
	require.Len(t, doc.Sentences, 5)

	sim := BuildMatrix(doc)
	n := sim.SymmetricDim()
	require.Equal(t, 5, n)

	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, sim.At(i, i), "diagonal %d", i)
		for j := 0; j < n; j++ {
			assert.Equal(t, sim.At(i, j), sim.At(j, i))
			assert.GreaterOrEqual(t, sim.At(i, j), 0.0)
			assert.LessOrEqual(t, sim.At(i, j), 1.0)
		}
	}

	assert.InDelta(t, 1.0, sim.At(0, 1), 1e-12)
	assert.Greater(t, sim.At(0, 2), 0.0)
	assert.Greater(t, sim.At(0, 1), sim.At(0, 2))
	assert.Equal(t, 0.0, sim.At(0, 3), "disjoint sentences")
	assert.Equal(t, 0.0, sim.At(3, 4))
}

func TestBuildMatrixZeroTokenSentence(t *testing.T) {
	english := profiles(t).Lookup("english")
	doc := NewDocument("The cat sat. The a an. A cat ran.", english)
	require.True(t, len(doc.Sentences) >= 2)

	sim := BuildMatrix(doc)
	n := sim.SymmetricDim()
	for i, s := range doc.Sentences {
		if len(s.Tokens) > 0 {
			continue
		}
		for j := 0; j < n; j++ {
			assert.Equal(t, 0.0, sim.At(i, j))
			assert.False(t, math.IsNaN(sim.At(i, j)))
		}
	}
}

func TestTransitionMatrixRowsSumToOne(t *testing.T) {
	sim := mat.NewSymDense(4, []float64{
		0, 0.5, 0.2, 0,
		0.5, 0, 0, 0,
		0.2, 0, 0, 0,
		0, 0, 0, 0,
	})

	tm := TransitionMatrix(sim)
	for i := 0; i < 4; i++ {
		row := mat.Row(nil, i, tm)
		assert.InDelta(t, 1.0, floats.Sum(row), 1e-12, "row %d", i)
		assert.Equal(t, 0.0, row[i])
	}

	// isolated sentence spreads uniformly over the others
	assert.Equal(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3, 0}, mat.Row(nil, 3, tm))
}

func TestCentralityStarGraph(t *testing.T) {
	sim := mat.NewSymDense(4, []float64{
		0, 0.5, 0.5, 0.5,
		0.5, 0, 0, 0,
		0.5, 0, 0, 0,
		0.5, 0, 0, 0,
	})

	scores := Centrality(sim)
	require.Len(t, scores.Values, 4)
	assert.True(t, scores.Converged)
	assert.LessOrEqual(t, scores.Iterations, MaxIterations)
	assert.InDelta(t, 1.0, floats.Sum(scores.Values), 1e-9)

	for i := 1; i < 4; i++ {
		assert.Greater(t, scores.Values[0], scores.Values[i])
		assert.InDelta(t, scores.Values[1], scores.Values[i], 1e-12)
		assert.GreaterOrEqual(t, scores.Values[i], 0.0)
	}
}

func TestCentralityIterationCap(t *testing.T) {
	sim := mat.NewSymDense(3, []float64{
		0, 0.9, 0.1,
		0.9, 0, 0,
		0.1, 0, 0,
	})

	scores := centrality(sim, 1, Tolerance)
	require.Len(t, scores.Values, 3)
	assert.False(t, scores.Converged)
	assert.Equal(t, 1, scores.Iterations)
	for _, v := range scores.Values {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.InDelta(t, 1.0, floats.Sum(scores.Values), 1e-9)
}

func TestSelectNearEqualScoresTieByPosition(t *testing.T) {
	doc := Document{Sentences: []Sentence{
		{Position: 0, Text: "a"},
		{Position: 1, Text: "b"},
		{Position: 2, Text: "c"},
	}}
	scores := []float64{0.1, 0.42173902366357574056, 0.42173902366357585159}

	got := Select(doc, scores, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Position)

	assert.True(t, sameScore(scores[1], scores[2]))
	assert.False(t, sameScore(0.42, 0.43))
}

func TestCentralitySingleSentence(t *testing.T) {
	scores := Centrality(mat.NewSymDense(1, nil))
	assert.Equal(t, []float64{1}, scores.Values)
	assert.True(t, scores.Converged)
	assert.Equal(t, 0, scores.Iterations)
}

func TestSelect(t *testing.T) {
	doc := Document{Sentences: []Sentence{
		{Position: 0, Text: "a"},
		{Position: 1, Text: "b"},
		{Position: 2, Text: "c"},
		{Position: 3, Text: "d"},
	}}

	tests := []struct {
		name   string
		scores []float64
		k      int
		want   []int
	}{
		{"top two restored to document order", []float64{0.1, 0.4, 0.2, 0.3}, 2, []int{1, 3}},
		{"tie prefers earlier", []float64{0.25, 0.25, 0.25, 0.25}, 1, []int{0}},
		{"partial tie", []float64{0.1, 0.3, 0.3, 0.3}, 2, []int{1, 2}},
		{"k larger than document", []float64{0.4, 0.3, 0.2, 0.1}, 10, []int{0, 1, 2, 3}},
		{"k zero", []float64{0.4, 0.3, 0.2, 0.1}, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(doc, tt.scores, tt.k)
			positions := make([]int, len(got))
			for i, r := range got {
				positions[i] = r.Position
				assert.Equal(t, tt.scores[r.Position], r.Score)
				assert.Equal(t, doc.Sentences[r.Position].Text, r.Text)
			}
			assert.Equal(t, tt.want, positions)
		})
	}
}

func TestDocumentDegenerate(t *testing.T) {
	english := profiles(t).Lookup("english")

	assert.True(t, NewDocument("", english).Empty())
	assert.True(t, NewDocument("the a an. the a an.", english).Degenerate())
	assert.False(t, NewDocument("The cat sat.", english).Degenerate())
}
