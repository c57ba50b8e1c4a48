package processor

import (
	"path/filepath"
	"strings"
)

type fileKind int

const (
	kindUnknown fileKind = iota
	kindTranscript
	kindSubtitle
	kindAudio
)

var extensions = map[string]fileKind{
	".txt":  kindTranscript,
	".srt":  kindSubtitle,
	".vtt":  kindSubtitle,
	".wav":  kindAudio,
	".mp3":  kindAudio,
	".m4a":  kindAudio,
	".ogg":  kindAudio,
	".flac": kindAudio,
	".webm": kindAudio,
	".mp4":  kindAudio,
}

func classify(path string) fileKind {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

func (k fileKind) String() string {
	switch k {
	case kindTranscript:
		return "transcript"
	case kindSubtitle:
		return "subtitle"
	case kindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

func (p *implProcessor) Supported(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return classify(path) != kindUnknown
}
