package summarizer

import (
	"strings"

	"github.com/nguyentantai21042004/recap/internal/language"
)

// Normalize lowercases words, drops stop-words and stems the rest
func Normalize(words []string, profile *language.Profile) []string {
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if profile.IsStopWord(w) {
			continue
		}
		if stem := profile.Stem(w); stem != "" {
			tokens = append(tokens, stem)
		}
	}
	return tokens
}

// NewDocument segments and normalizes text
func NewDocument(text string, profile *language.Profile) Document {
	sentences := Segment(text, profile)
	for i := range sentences {
		sentences[i].Tokens = Normalize(sentences[i].Words, profile)
	}
	return Document{
		Language:  profile.Name,
		Sentences: sentences,
	}
}
