package processor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

func (p *implProcessor) writeDocx(r report) (string, error) {
	docxPath := filepath.Join(p.cfg.Paths.Output, r.Title+".docx")
	if err := reportToDocx(r, docxPath); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}
	return docxPath, nil
}

// reportToDocx writes the summary followed by the full transcript
func reportToDocx(r report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), r.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), r.Created.Format("2006-01-02 15:04"), false, fontSize)

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	if len(r.Result.Sentences) == 0 {
		addStyledRun(doc.AddParagraph(""), r.Result.Summary, false, fontSize)
	}
	for _, s := range r.Result.Sentences {
		addStyledRun(doc.AddParagraph(""), "• "+s.Text, false, fontSize)
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, line := range strings.Split(r.Transcript, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			addStyledRun(doc.AddParagraph(""), line, false, fontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
