package language

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	punkt "github.com/neurosnap/sentences/english"
)

var reParagraph = regexp.MustCompile(`\n\s*\n`)

// punktSplitter uses the pre-trained English punkt model
type punktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func newPunktSplitter() (*punktSplitter, error) {
	tokenizer, err := punkt.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &punktSplitter{tokenizer: tokenizer}, nil
}

func (s *punktSplitter) Split(text string) []string {
	var out []string
	for _, paragraph := range reParagraph.Split(text, -1) {
		for _, sentence := range s.tokenizer.Tokenize(paragraph) {
			out = appendSentence(out, sentence.Text)
		}
	}
	return out
}

// ruleSplitter splits on terminal punctuation followed by whitespace,
// skipping known abbreviations and single-letter initials.
type ruleSplitter struct {
	abbreviations map[string]struct{}
}

func newRuleSplitter(abbreviations []string) *ruleSplitter {
	set := make(map[string]struct{}, len(abbreviations))
	for _, a := range abbreviations {
		a = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(a), "."))
		if a != "" {
			set[a] = struct{}{}
		}
	}
	return &ruleSplitter{abbreviations: set}
}

func (s *ruleSplitter) Split(text string) []string {
	var out []string
	for _, paragraph := range reParagraph.Split(text, -1) {
		out = s.splitParagraph(out, []rune(paragraph))
	}
	return out
}

func (s *ruleSplitter) splitParagraph(out []string, runes []rune) []string {
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if !isTerminator(r) {
			continue
		}

		end := i + 1
		for end < len(runes) && (isTerminator(runes[end]) || isCloser(runes[end])) {
			end++
		}

		// CJK full stops end a sentence without trailing space
		if !isFullWidthTerminator(r) {
			if end < len(runes) && !unicode.IsSpace(runes[end]) {
				i = end - 1
				continue
			}
			if r == '.' && s.isAbbreviation(runes[start:i]) {
				i = end - 1
				continue
			}
		}

		out = appendSentence(out, string(runes[start:end]))
		start = end
		i = end - 1
	}

	return appendSentence(out, string(runes[start:]))
}

func (s *ruleSplitter) isAbbreviation(before []rune) bool {
	idx := len(before)
	for idx > 0 && !unicode.IsSpace(before[idx-1]) {
		idx--
	}
	word := strings.TrimLeftFunc(string(before[idx:]), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if word == "" {
		return false
	}

	w := []rune(word)
	if len(w) == 1 && unicode.IsUpper(w[0]) {
		return true
	}

	_, ok := s.abbreviations[strings.ToLower(word)]
	return ok
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…':
		return true
	}
	return isFullWidthTerminator(r)
}

func isFullWidthTerminator(r rune) bool {
	switch r {
	case '。', '！', '？':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '»', '”', '’', '」', '』':
		return true
	}
	return false
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}
