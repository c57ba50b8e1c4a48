package api

import (
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/language"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
)

type Handler struct {
	logger     logger.Logger
	summarizer summarizer.Summarizer
	languages  language.Registry
	cfg        *config.Config
}

func NewHandler(
	log logger.Logger,
	sum summarizer.Summarizer,
	languages language.Registry,
	cfg *config.Config,
) *Handler {
	return &Handler{
		logger:     log,
		summarizer: sum,
		languages:  languages,
		cfg:        cfg,
	}
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SummarizeRequest
	if err := DecodeJSON(w, r, h.cfg.Server.MaxBodyBytes, &req); err != nil {
		h.logger.Warn(ctx, "Decode request: %v", err)
		HandleError(w, err)
		return
	}

	if req.Text == nil {
		HandleError(w, &HTTPError{Code: http.StatusBadRequest, Message: "text is required"})
		return
	}

	lang := req.Language
	if lang == "" {
		lang = h.cfg.Summary.Language
	}
	count := h.cfg.Summary.SentenceCount
	if req.SentenceCount != nil {
		count = *req.SentenceCount
	}

	if !h.languages.Supported(lang) {
		h.logger.Warn(ctx, "Unsupported language %q, using generic rules", lang)
	}

	result, err := h.summarizer.Rank(*req.Text, lang, count)
	if err != nil {
		if errors.Is(err, summarizer.ErrInvalidSentenceCount) {
			HandleError(w, &HTTPError{Code: http.StatusBadRequest, Message: err.Error()})
			return
		}
		h.logger.Error(ctx, "Summarize: %v", err)
		HandleError(w, err)
		return
	}

	sentences := result.Sentences
	if sentences == nil {
		sentences = []summarizer.Ranked{}
	}

	h.logger.Debug(ctx, "Selected %d of %d sentences (%s)", len(sentences), result.Total, result.Language)

	JSONResponse(w, http.StatusOK, SummarizeResponse{
		Summary:    result.Summary,
		Sentences:  sentences,
		Language:   result.Language,
		Total:      result.Total,
		Iterations: result.Iterations,
		Converged:  result.Converged,
	})
}

func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, LanguagesResponse{
		Languages: h.languages.Languages(),
		Default:   h.cfg.Summary.Language,
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}
