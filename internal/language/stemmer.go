package language

import (
	"fmt"
	"strings"

	snowballen "github.com/kljensen/snowball/english"
	snowballfr "github.com/kljensen/snowball/french"
	snowballru "github.com/kljensen/snowball/russian"
	snowballes "github.com/kljensen/snowball/spanish"
	snowballsv "github.com/kljensen/snowball/swedish"
)

const stemmerNone = "none"

var snowballStemmers = map[string]func(string, bool) string{
	"english": snowballen.Stem,
	"spanish": snowballes.Stem,
	"french":  snowballfr.Stem,
	"russian": snowballru.Stem,
	"swedish": snowballsv.Stem,
}

// stemmerFor returns the stem function registered under name.
// "none" and "" select the identity transform.
func stemmerFor(name string) (func(string) string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == stemmerNone {
		return nil, nil
	}

	fn, ok := snowballStemmers[name]
	if !ok {
		return nil, fmt.Errorf("unknown stemmer %q", name)
	}

	return func(word string) string {
		return fn(word, false)
	}, nil
}
