package summarizer

import (
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

type term struct {
	token  string
	weight float64
}

// vector is a sparse term-weight vector sorted by token
type vector struct {
	terms []term
	norm  float64
}

// BuildMatrix returns the idf-weighted cosine similarity of every sentence
// pair. The matrix is symmetric with a zero diagonal and entries in [0, 1];
// sentences without tokens get all-zero rows. doc must not be empty.
func BuildMatrix(doc Document) *mat.SymDense {
	n := len(doc.Sentences)
	sim := mat.NewSymDense(n, nil)

	idf := inverseFrequencies(doc)
	vectors := make([]vector, n)
	for i, s := range doc.Sentences {
		vectors[i] = termVector(s.Tokens, idf)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim.SetSym(i, j, cosine(vectors[i], vectors[j]))
		}
	}

	return sim
}

// inverseFrequencies uses ln(1 + n/df) so a token shared by every sentence
// still links them
func inverseFrequencies(doc Document) map[string]float64 {
	df := make(map[string]int)
	for _, s := range doc.Sentences {
		seen := make(map[string]struct{}, len(s.Tokens))
		for _, t := range s.Tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(doc.Sentences))
	idf := make(map[string]float64, len(df))
	for t, count := range df {
		idf[t] = math.Log1p(n / float64(count))
	}
	return idf
}

// termVector weights each token by its frequency relative to the most
// frequent token of the sentence, times its idf
func termVector(tokens []string, idf map[string]float64) vector {
	if len(tokens) == 0 {
		return vector{}
	}

	counts := make(map[string]int, len(tokens))
	maxCount := 0
	for _, t := range tokens {
		counts[t]++
		maxCount = max(maxCount, counts[t])
	}

	terms := make([]term, 0, len(counts))
	for t, c := range counts {
		terms = append(terms, term{
			token:  t,
			weight: float64(c) / float64(maxCount) * idf[t],
		})
	}
	slices.SortFunc(terms, func(a, b term) int {
		return strings.Compare(a.token, b.token)
	})

	sumSq := 0.0
	for _, t := range terms {
		sumSq += t.weight * t.weight
	}

	return vector{terms: terms, norm: math.Sqrt(sumSq)}
}

func cosine(a, b vector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}

	dot := 0.0
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch c := strings.Compare(a.terms[i].token, b.terms[j].token); {
		case c == 0:
			dot += a.terms[i].weight * b.terms[j].weight
			i++
			j++
		case c < 0:
			i++
		default:
			j++
		}
	}

	return math.Min(1, math.Max(0, dot/(a.norm*b.norm)))
}
