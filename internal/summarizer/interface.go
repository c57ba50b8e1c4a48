package summarizer

// Summarizer selects the most central sentences of a text.
// Implementations hold only read-only state and are safe for concurrent use.
type Summarizer interface {
	// Summarize returns up to sentenceCount sentences of text joined by single
	// spaces in their original order, or the language sentinel when nothing
	// could be selected.
	Summarize(text, language string, sentenceCount int) (string, error)
	// Rank runs the same pipeline and reports the selected sentences with
	// their scores and convergence details.
	Rank(text, language string, sentenceCount int) (Result, error)
}
