package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/afs/file"

	"github.com/nguyentantai21042004/recap/internal/summarizer"
)

// report is everything written for one processed file
type report struct {
	Title      string
	Created    time.Time
	Source     string
	Transcript string
	Result     summarizer.Result
}

func (r report) markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "_%s · %s · %s_\n\n", r.Created.Format("2006-01-02 15:04"), r.Result.Language, r.Source)

	b.WriteString("## Summary\n\n")
	if len(r.Result.Sentences) == 0 {
		b.WriteString(r.Result.Summary)
		b.WriteString("\n")
	}
	for _, s := range r.Result.Sentences {
		fmt.Fprintf(&b, "- %s\n", s.Text)
	}

	fmt.Fprintf(&b, "\n_%d of %d sentences selected_\n\n", len(r.Result.Sentences), r.Result.Total)

	b.WriteString("## Transcript\n\n")
	b.WriteString(strings.TrimSpace(r.Transcript))
	b.WriteString("\n")

	return b.String()
}

func (p *implProcessor) writeMarkdown(ctx context.Context, r report) (string, error) {
	mdPath := filepath.Join(p.cfg.Paths.Output, r.Title+".md")
	if err := p.fs.Upload(ctx, mdPath, file.DefaultFileOsMode, strings.NewReader(r.markdown())); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return mdPath, nil
}
