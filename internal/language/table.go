package language

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is a YAML language table merged over the built-in profiles.
//
//	languages:
//	  english:
//	    stop_words: [um, uh, yeah]
//	  german:
//	    aliases: [de]
//	    stop_words: [der, die, das, und]
//	    abbreviations: [z.b, usw]
//	    sentinel: "Zusammenfassung konnte nicht erstellt werden."
type Table struct {
	Languages map[string]Override `yaml:"languages"`
}

// Override adjusts an existing profile or defines a new one
type Override struct {
	Aliases          []string `yaml:"aliases"`
	Stemmer          string   `yaml:"stemmer"`
	StopWords        []string `yaml:"stop_words"`
	ReplaceStopWords bool     `yaml:"replace_stop_words"`
	Abbreviations    []string `yaml:"abbreviations"`
	Sentinel         string   `yaml:"sentinel"`
}

// ParseTable decodes a YAML language table
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse language table: %w", err)
	}
	return &t, nil
}

// LoadTable reads a YAML language table from disk
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language table: %w", err)
	}
	return ParseTable(data)
}

// NewFromFile builds a Registry with the table at path merged over the
// built-ins. An empty path yields the built-ins only.
func NewFromFile(path string) (Registry, error) {
	if path == "" {
		return New(nil)
	}
	table, err := LoadTable(path)
	if err != nil {
		return nil, err
	}
	return New(table)
}
