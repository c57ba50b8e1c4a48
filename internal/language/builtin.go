package language

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed stopwords/*.txt
var stopWordFiles embed.FS

// DefaultSentinel is returned for unknown languages when nothing could be selected
const DefaultSentinel = "Summary could not be generated."

type builtin struct {
	name          string
	aliases       []string
	stemmer       string
	stopWords     string
	sentinel      string
	punkt         bool
	abbreviations []string
}

var builtins = []builtin{
	{
		name:      "english",
		aliases:   []string{"en", "eng"},
		stemmer:   "english",
		stopWords: "stopwords/english.txt",
		sentinel:  DefaultSentinel,
		punkt:     true,
	},
	{
		name:          "spanish",
		aliases:       []string{"es", "spa", "español", "espanol"},
		stemmer:       "spanish",
		stopWords:     "stopwords/spanish.txt",
		sentinel:      "No se pudo generar el resumen.",
		abbreviations: []string{"sr", "sra", "srta", "dr", "dra", "ud", "uds", "etc", "pág", "núm"},
	},
	{
		name:          "french",
		aliases:       []string{"fr", "fra", "français", "francais"},
		stemmer:       "french",
		stopWords:     "stopwords/french.txt",
		sentinel:      "Le résumé n'a pas pu être généré.",
		abbreviations: []string{"m", "mme", "mlle", "dr", "etc", "p", "av", "env"},
	},
	{
		name:          "russian",
		aliases:       []string{"ru", "rus"},
		stemmer:       "russian",
		stopWords:     "stopwords/russian.txt",
		sentinel:      "Не удалось составить краткое содержание.",
		abbreviations: []string{"т", "д", "п", "г", "гг", "др", "см", "стр"},
	},
}

func readStopWords(path string) (map[string]struct{}, error) {
	f, err := stopWordFiles.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stop-words %s: %w", path, err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stop-words %s: %w", path, err)
	}

	return words, nil
}
