package language

// Registry resolves caller supplied language names to read-only profiles.
// A Registry is safe for concurrent use once constructed.
type Registry interface {
	// Lookup returns the profile for name. Unknown names resolve to a
	// fallback profile with no stop-words, an identity stemmer and the
	// generic punctuation splitter, so Lookup never returns nil.
	Lookup(name string) *Profile
	// Supported reports whether name (or one of its aliases) has a profile.
	Supported(name string) bool
	// Languages lists the canonical profile names, sorted.
	Languages() []string
}

// SentenceSplitter breaks text into sentence strings in reading order
type SentenceSplitter interface {
	Split(text string) []string
}
