package summarizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSentenceCount is returned for a negative sentence count
var ErrInvalidSentenceCount = errors.New("sentence count must not be negative")

// Summarize returns the selected sentences joined by single spaces, or the
// language sentinel when nothing could be selected.
func (s *implSummarizer) Summarize(text, language string, sentenceCount int) (string, error) {
	result, err := s.Rank(text, language, sentenceCount)
	if err != nil {
		return "", err
	}
	return result.Summary, nil
}

// Rank segments, normalizes, builds the similarity graph and selects the
// most central sentences.
func (s *implSummarizer) Rank(text, language string, sentenceCount int) (Result, error) {
	if sentenceCount < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSentenceCount, sentenceCount)
	}
	if strings.TrimSpace(language) == "" {
		language = DefaultLanguage
	}

	profile := s.languages.Lookup(language)
	doc := NewDocument(text, profile)

	result := Result{
		Language: profile.Name,
		Summary:  profile.Sentinel,
		Total:    len(doc.Sentences),
	}

	if doc.Empty() || doc.Degenerate() || sentenceCount == 0 {
		return result, nil
	}

	scores := Centrality(BuildMatrix(doc))
	result.Iterations = scores.Iterations
	result.Converged = scores.Converged
	result.Sentences = Select(doc, scores.Values, sentenceCount)

	texts := make([]string, len(result.Sentences))
	for i, r := range result.Sentences {
		texts[i] = r.Text
	}
	result.Summary = strings.Join(texts, " ")

	return result, nil
}
