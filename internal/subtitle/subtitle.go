// Package subtitle converts timestamped transcription segments into
// SRT, WebVTT, and plain-text output.
package subtitle

import (
	"fmt"
	"math"
	"strings"

	"zhscribe/internal/models"
)

// FormatTimestamp converts a second count to HH:MM:SS,mmm (comma=true,
// SRT convention) or HH:MM:SS.mmm (VTT convention). Hours do not wrap.
// Callers must guarantee non-negative finite input.
func FormatTimestamp(seconds float64, comma bool) string {
	total := int64(math.Round(seconds * 1000))
	h := total / 3600000
	m := (total / 60000) % 60
	s := (total / 1000) % 60
	ms := total % 1000

	sep := "."
	if comma {
		sep = ","
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", h, m, s, sep, ms)
}

// ToSRT renders segments as SRT: a 1-based index line, a timing line,
// and the text, with blank lines between blocks.
func ToSRT(segments []models.TranscriptionSegment) string {
	var sb strings.Builder
	for i, seg := range segments {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(seg.Start, true),
			FormatTimestamp(seg.End, true),
		))
		sb.WriteString(seg.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToVTT renders segments as WebVTT: the literal WEBVTT header, a blank
// line, then one timing+text block per segment.
func ToVTT(segments []models.TranscriptionSegment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, seg := range segments {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(seg.Start, false),
			FormatTimestamp(seg.End, false),
		))
		sb.WriteString(seg.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToPlainText returns fullText verbatim when available, otherwise joins
// all segment texts with single spaces.
func ToPlainText(segments []models.TranscriptionSegment, fullText string) string {
	if fullText != "" {
		return fullText
	}
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, " ")
}
