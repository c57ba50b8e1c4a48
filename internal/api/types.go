package api

import "github.com/nguyentantai21042004/recap/internal/summarizer"

type SummarizeRequest struct {
	Text          *string `json:"text"`
	Language      string  `json:"language,omitempty"`
	SentenceCount *int    `json:"sentence_count,omitempty"`
}

type SummarizeResponse struct {
	Summary    string              `json:"summary"`
	Sentences  []summarizer.Ranked `json:"sentences"`
	Language   string              `json:"language"`
	Total      int                 `json:"total_sentences"`
	Iterations int                 `json:"iterations"`
	Converged  bool                `json:"converged"`
}

type LanguagesResponse struct {
	Languages []string `json:"languages"`
	Default   string   `json:"default"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
