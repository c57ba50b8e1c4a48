package processor

import (
	"regexp"
	"strings"
)

var (
	reSrtIndex = regexp.MustCompile(`^\d+$`)
	reSrtTime  = regexp.MustCompile(`^(\d{2}:)?\d{2}:\d{2}[,.]\d{3}\s*-->`)
	reTag      = regexp.MustCompile(`<[^>]+>`)
)

// subtitleText strips cue numbers, timestamps and markup from SRT or WebVTT
// content and joins the dialogue. Consecutive repeated lines are collapsed.
func subtitleText(content string) string {
	var lines []string
	last := ""

	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}
		if trimmed == "WEBVTT" || strings.HasPrefix(trimmed, "NOTE") {
			continue
		}

		trimmed = strings.TrimSpace(reTag.ReplaceAllString(trimmed, ""))
		if trimmed == "" || trimmed == last {
			continue
		}
		last = trimmed
		lines = append(lines, trimmed)
	}

	return strings.Join(lines, " ")
}
