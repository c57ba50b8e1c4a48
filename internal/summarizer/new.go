package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/recap/internal/language"
)

const (
	DefaultLanguage      = "english"
	DefaultSentenceCount = 5
)

type implSummarizer struct {
	languages language.Registry
}

// New creates a Summarizer backed by the given language tables
func New(languages language.Registry) Summarizer {
	return &implSummarizer{
		languages: languages,
	}
}

// NewDefault creates a Summarizer with the built-in language tables
func NewDefault() (Summarizer, error) {
	languages, err := language.New(nil)
	if err != nil {
		return nil, fmt.Errorf("load languages: %w", err)
	}
	return New(languages), nil
}
