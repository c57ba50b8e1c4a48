package summarizer

// Sentence is one sentence of a Document. Text is kept verbatim for output,
// Tokens are the normalized forms used for comparison.
type Sentence struct {
	Position int
	Text     string
	Words    []string
	Tokens   []string
}

// Document is the ordered sentence list built once per request
type Document struct {
	Language  string
	Sentences []Sentence
}

// Empty reports whether the document has no sentences
func (d Document) Empty() bool {
	return len(d.Sentences) == 0
}

// Degenerate reports whether normalization left no token in any sentence
func (d Document) Degenerate() bool {
	for _, s := range d.Sentences {
		if len(s.Tokens) > 0 {
			return false
		}
	}
	return true
}

// Ranked is a selected sentence with its centrality score
type Ranked struct {
	Position int     `json:"position"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
}

// Scores is the output of the centrality computation
type Scores struct {
	Values     []float64
	Iterations int
	Converged  bool
}

// Result is the detailed outcome of Rank
type Result struct {
	Language   string   `json:"language"`
	Summary    string   `json:"summary"`
	Sentences  []Ranked `json:"sentences"`
	Total      int      `json:"total_sentences"`
	Iterations int      `json:"iterations"`
	Converged  bool     `json:"converged"`
}
