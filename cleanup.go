package main

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

// Matches a pattern of 2-6 non-whitespace characters repeated at least
// three times in a row. Backreferences need regexp2.
var repeatedPatternRE = regexp2.MustCompile(`([\S]{2,6})(\1{2,})`, 0)

// reduceRepeatedRuns collapses stuttered patterns like "hahahahaha" down to
// two occurrences. Auto-generated subtitles are full of these and they make
// translation providers ramble.
func reduceRepeatedRuns(text string) string {
	normalized := norm.NFKC.String(text)
	for {
		m, _ := repeatedPatternRE.FindStringMatch(normalized)
		if m == nil {
			break
		}
		word := m.Groups()[1].String()
		normalized = strings.Replace(normalized, m.String(), word+word, 1)
	}
	return normalized
}

// cleanEvents applies reduceRepeatedRuns to the content spans of each
// dialogue event. Override tags are skipped: a karaoke line is nothing but
// repeated {\k..} blocks and must not be collapsed.
func cleanEvents(events []*Event) {
	for _, ev := range events {
		if ev.Comment || strings.TrimSpace(ev.Text) == "" {
			continue
		}
		spans := splitTagSpans(ev.Text)
		for i, span := range spans {
			if isTagSpan(span) || strings.TrimSpace(span) == "" {
				continue
			}
			spans[i] = reduceRepeatedRuns(span)
		}
		ev.Text = strings.Join(spans, "")
	}
}
