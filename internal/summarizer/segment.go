package summarizer

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/language"
)

var reWord = regexp.MustCompile(`[\p{L}\p{M}\p{N}]+`)

// Segment splits text into sentences and each sentence into word tokens.
// Empty or whitespace-only text yields no sentences.
func Segment(text string, profile *language.Profile) []Sentence {
	text = strings.ToValidUTF8(text, "")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	parts := profile.Sentences(text)
	sentences := make([]Sentence, 0, len(parts))
	for _, part := range parts {
		sentences = append(sentences, Sentence{
			Position: len(sentences),
			Text:     part,
			Words:    reWord.FindAllString(part, -1),
		})
	}

	return sentences
}
