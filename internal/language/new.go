package language

import (
	"fmt"
	"slices"
	"strings"
)

type implRegistry struct {
	profiles map[string]*Profile
	aliases  map[string]string
	fallback *Profile
}

// New builds a Registry from the built-in profiles with table merged on top.
// table may be nil.
func New(table *Table) (Registry, error) {
	r := &implRegistry{
		profiles: make(map[string]*Profile),
		aliases:  make(map[string]string),
		fallback: &Profile{
			Sentinel:    DefaultSentinel,
			stemmerName: stemmerNone,
			stopWords:   map[string]struct{}{},
			splitter:    newRuleSplitter(nil),
		},
	}

	for _, b := range builtins {
		p, err := buildProfile(b)
		if err != nil {
			return nil, fmt.Errorf("build %s profile: %w", b.name, err)
		}
		r.add(p, b.aliases)
	}

	if table != nil {
		names := make([]string, 0, len(table.Languages))
		for name := range table.Languages {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			if err := r.merge(name, table.Languages[name]); err != nil {
				return nil, fmt.Errorf("merge %s profile: %w", name, err)
			}
		}
	}

	return r, nil
}

func buildProfile(b builtin) (*Profile, error) {
	stopWords, err := readStopWords(b.stopWords)
	if err != nil {
		return nil, err
	}

	stem, err := stemmerFor(b.stemmer)
	if err != nil {
		return nil, err
	}

	var splitter SentenceSplitter = newRuleSplitter(b.abbreviations)
	if b.punkt {
		ps, err := newPunktSplitter()
		if err != nil {
			return nil, fmt.Errorf("load punkt model: %w", err)
		}
		splitter = ps
	}

	return &Profile{
		Name:        b.name,
		Sentinel:    b.sentinel,
		known:       true,
		stemmerName: b.stemmer,
		stopWords:   stopWords,
		stem:        stem,
		splitter:    splitter,
	}, nil
}

func (r *implRegistry) add(p *Profile, aliases []string) {
	r.profiles[p.Name] = p
	for _, a := range aliases {
		r.aliases[normalizeName(a)] = p.Name
	}
}

func (r *implRegistry) merge(name string, o Override) error {
	name = normalizeName(name)
	if name == "" {
		return fmt.Errorf("empty language name")
	}
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}

	p, exists := r.profiles[name]
	if !exists {
		p = &Profile{
			Name:        name,
			Sentinel:    DefaultSentinel,
			known:       true,
			stemmerName: stemmerNone,
			stopWords:   map[string]struct{}{},
			splitter:    newRuleSplitter(nil),
		}
	} else {
		// copy so built-in tables are never mutated in place
		cp := *p
		cp.stopWords = make(map[string]struct{}, len(p.stopWords))
		for w := range p.stopWords {
			cp.stopWords[w] = struct{}{}
		}
		p = &cp
	}

	if o.Stemmer != "" {
		stem, err := stemmerFor(o.Stemmer)
		if err != nil {
			return err
		}
		p.stem = stem
		p.stemmerName = strings.ToLower(o.Stemmer)
	}

	if o.ReplaceStopWords {
		p.stopWords = make(map[string]struct{}, len(o.StopWords))
	}
	for _, w := range o.StopWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			p.stopWords[w] = struct{}{}
		}
	}

	if len(o.Abbreviations) > 0 {
		if _, isPunkt := p.splitter.(*punktSplitter); !isPunkt {
			p.splitter = newRuleSplitter(o.Abbreviations)
		}
	}

	if o.Sentinel != "" {
		p.Sentinel = o.Sentinel
	}

	r.add(p, o.Aliases)
	return nil
}

func (r *implRegistry) resolve(name string) (*Profile, bool) {
	name = normalizeName(name)
	if p, ok := r.profiles[name]; ok {
		return p, true
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.profiles[canonical], true
	}

	// en-US, pt_BR
	if base, _, found := strings.Cut(strings.ReplaceAll(name, "_", "-"), "-"); found {
		if p, ok := r.profiles[base]; ok {
			return p, true
		}
		if canonical, ok := r.aliases[base]; ok {
			return r.profiles[canonical], true
		}
	}

	return nil, false
}

func (r *implRegistry) Lookup(name string) *Profile {
	if p, ok := r.resolve(name); ok {
		return p
	}

	fb := *r.fallback
	fb.Name = normalizeName(name)
	return &fb
}

func (r *implRegistry) Supported(name string) bool {
	_, ok := r.resolve(name)
	return ok
}

func (r *implRegistry) Languages() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
