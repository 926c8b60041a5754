package main

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// tagPattern matches ASS override blocks like {\an8} or {\pos(10,20)\i1}.
var tagPattern = regexp.MustCompile(`\{[^}]*\}`)

// tagSpanPattern recognizes a span that is exactly one override block.
var tagSpanPattern = regexp.MustCompile(`^\{[^}]*\}$`)

var errEmptyTranslation = errors.New("provider returned an empty translation")

// splitTagSpans splits text into alternating content and tag spans,
// preserving empty spans so that a line starting or ending with a tag
// reassembles exactly. Concatenating the result yields the input.
func splitTagSpans(text string) []string {
	var spans []string
	last := 0
	for _, loc := range tagPattern.FindAllStringIndex(text, -1) {
		spans = append(spans, text[last:loc[0]], text[loc[0]:loc[1]])
		last = loc[1]
	}
	return append(spans, text[last:])
}

func isTagSpan(span string) bool {
	return tagSpanPattern.MatchString(span)
}

// translateLine translates the content spans of one subtitle line through
// translate while copying override tags verbatim. A span whose translation
// fails keeps its original text; sibling spans are unaffected.
func translateLine(text string, translate func(string) (string, error)) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	var b strings.Builder
	for _, span := range splitTagSpans(text) {
		if isTagSpan(span) || strings.TrimSpace(span) == "" {
			b.WriteString(span)
			continue
		}
		translated, err := translate(span)
		if err != nil || translated == "" {
			b.WriteString(span)
			continue
		}
		b.WriteString(translated)
	}
	return b.String()
}

// translateStats summarizes one document pass.
type translateStats struct {
	Spans         int // translatable content spans seen
	CacheHits     int
	FailedBatches int
}

// translateEventsByLine runs the per-line path: one provider request per
// uncached content span, progress reported after each line. This is the
// path the CLI uses by default.
func translateEventsByLine(ctx context.Context, events []*Event, lineBreak string, tr Translator, cache *translationCache, config *Config, progress func(done, total int)) (*translateStats, error) {
	stats := &translateStats{}

	translateSpan := func(span string) (string, error) {
		stats.Spans++
		if hit, ok := cache.Get(span, config.sourceLang, config.targetLang, tr.Name()); ok {
			stats.CacheHits++
			return hit, nil
		}
		out, err := tr.TranslateSpans(ctx, []string{span}, config.sourceLang, config.targetLang)
		if err != nil {
			return "", err
		}
		if len(out) == 0 || out[0] == "" {
			return "", errEmptyTranslation
		}
		cache.Put(span, config.sourceLang, config.targetLang, tr.Name(), out[0])
		return out[0], nil
	}

	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		applyTranslation(ev, translateLine(ev.Text, translateSpan), lineBreak, config.dual)
		if progress != nil {
			progress(i+1, len(events))
		}
	}
	return stats, nil
}

type spanRef struct {
	event, span int
}

// translateEventsBatched runs the batch wrapper: content spans from all
// events are collected, cache hits short-circuited, and the misses grouped
// into fixed-size batches with one provider call each. A failed batch keeps
// its original spans and does not affect other batches.
func translateEventsBatched(ctx context.Context, events []*Event, lineBreak string, tr Translator, cache *translationCache, config *Config, progress func(done, total int)) (*translateStats, error) {
	stats := &translateStats{}

	spans := make([][]string, len(events))
	var misses []spanRef
	for i, ev := range events {
		spans[i] = splitTagSpans(ev.Text)
		for j, span := range spans[i] {
			if isTagSpan(span) || strings.TrimSpace(span) == "" {
				continue
			}
			stats.Spans++
			if hit, ok := cache.Get(span, config.sourceLang, config.targetLang, tr.Name()); ok {
				stats.CacheHits++
				spans[i][j] = hit
				continue
			}
			misses = append(misses, spanRef{i, j})
		}
	}

	batchSize := config.batchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	totalBatches := (len(misses) + batchSize - 1) / batchSize

	for start := 0; start < len(misses); start += batchSize {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		end := start + batchSize
		if end > len(misses) {
			end = len(misses)
		}
		batch := misses[start:end]
		texts := make([]string, len(batch))
		for k, ref := range batch {
			texts[k] = spans[ref.event][ref.span]
		}

		out, err := tr.TranslateSpans(ctx, texts, config.sourceLang, config.targetLang)
		if err != nil {
			// Keep the original spans of this batch and carry on.
			stats.FailedBatches++
		} else {
			// Results beyond len(texts) are dropped; missing or empty
			// results fall back to the original span text.
			for k, ref := range batch {
				if k < len(out) && out[k] != "" {
					spans[ref.event][ref.span] = out[k]
					cache.Put(texts[k], config.sourceLang, config.targetLang, tr.Name(), out[k])
				}
			}
		}
		if progress != nil {
			progress(start/batchSize+1, totalBatches)
		}
	}

	for i, ev := range events {
		applyTranslation(ev, strings.Join(spans[i], ""), lineBreak, config.dual)
	}
	return stats, nil
}

// applyTranslation writes the translated text back into the event. In dual
// mode the translated line is placed above the original, joined by the
// format's forced line break. An unchanged line is left alone so identity
// translations round-trip exactly.
func applyTranslation(ev *Event, translated, lineBreak string, dual bool) {
	if translated == ev.Text {
		return
	}
	if dual {
		ev.Text = translated + lineBreak + ev.Text
		return
	}
	ev.Text = translated
}
