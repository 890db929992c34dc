package subtitle

import (
	"strings"
	"testing"

	"zhscribe/internal/models"
)

// TestFormatTimestamp checks both separator conventions and padding.
func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		comma   bool
		want    string
	}{
		{3725.250, true, "01:02:05,250"},
		{0, false, "00:00:00.000"},
		{5.2, true, "00:00:05,200"},
		{12.8, false, "00:00:12.800"},
		{59.999, true, "00:00:59,999"},
		{3600, false, "01:00:00.000"},
	}

	for _, tc := range cases {
		got := FormatTimestamp(tc.seconds, tc.comma)
		if got != tc.want {
			t.Errorf("FormatTimestamp(%v, %v) = %q, want %q", tc.seconds, tc.comma, got, tc.want)
		}
	}
}

// TestToSRT verifies the single-segment block shape from positional index
// through trailing newline.
func TestToSRT(t *testing.T) {
	got := ToSRT([]models.TranscriptionSegment{
		{Start: 0, End: 5.2, Text: "欢迎观看"},
	})
	want := "1\n00:00:00,000 --> 00:00:05,200\n欢迎观看\n"
	if got != want {
		t.Fatalf("ToSRT = %q, want %q", got, want)
	}
}

// TestToSRTMultipleSegments checks blank-line separation and sequential
// indexing.
func TestToSRTMultipleSegments(t *testing.T) {
	got := ToSRT([]models.TranscriptionSegment{
		{Start: 0, End: 5.2, Text: "第一句"},
		{Start: 5.2, End: 12.8, Text: "第二句"},
	})
	want := "1\n00:00:00,000 --> 00:00:05,200\n第一句\n\n2\n00:00:05,200 --> 00:00:12,800\n第二句\n"
	if got != want {
		t.Fatalf("ToSRT = %q, want %q", got, want)
	}
}

// TestToVTT verifies the header and period-separated timestamps with no
// index lines.
func TestToVTT(t *testing.T) {
	got := ToVTT([]models.TranscriptionSegment{
		{Start: 0, End: 5.2, Text: "第一句"},
		{Start: 5.2, End: 12.8, Text: "第二句"},
	})
	if !strings.HasPrefix(got, "WEBVTT\n\n") {
		t.Fatalf("ToVTT should start with WEBVTT header, got %q", got)
	}
	want := "WEBVTT\n\n00:00:00.000 --> 00:00:05.200\n第一句\n\n00:00:05.200 --> 00:00:12.800\n第二句\n"
	if got != want {
		t.Fatalf("ToVTT = %q, want %q", got, want)
	}
}

// TestToPlainText checks the fullText shortcut and the joined fallback.
func TestToPlainText(t *testing.T) {
	segments := []models.TranscriptionSegment{
		{Text: "你好"},
		{Text: "世界"},
	}

	if got := ToPlainText(segments, "完整文本"); got != "完整文本" {
		t.Fatalf("ToPlainText with fullText = %q, want %q", got, "完整文本")
	}
	if got := ToPlainText(segments, ""); got != "你好 世界" {
		t.Fatalf("ToPlainText fallback = %q, want %q", got, "你好 世界")
	}
}
