package language

// Profile holds the per-language tables used to segment and normalize text
type Profile struct {
	Name     string
	Sentinel string

	known       bool
	stemmerName string
	stopWords   map[string]struct{}
	stem        func(string) string
	splitter    SentenceSplitter
}

// Known reports whether the profile came from the registry tables rather
// than the unknown-language fallback.
func (p *Profile) Known() bool {
	return p.known
}

// StemmerName returns the name of the stemming rules in use ("none" for identity)
func (p *Profile) StemmerName() string {
	return p.stemmerName
}

// StopWordCount returns the size of the stop-word set
func (p *Profile) StopWordCount() int {
	return len(p.stopWords)
}

// IsStopWord expects a lowercased word
func (p *Profile) IsStopWord(word string) bool {
	_, ok := p.stopWords[word]
	return ok
}

// Stem expects a lowercased word
func (p *Profile) Stem(word string) string {
	if p.stem == nil {
		return word
	}
	return p.stem(word)
}

// Sentences splits text into trimmed, non-empty sentences
func (p *Profile) Sentences(text string) []string {
	return p.splitter.Split(text)
}
