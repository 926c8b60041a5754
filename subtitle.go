package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"
)

// Event is one timed subtitle entry. Comment events are carried through
// untouched; only the text of dialogue events is ever rewritten.
type Event struct {
	Comment bool
	Text    string
}

// Document is a loaded subtitle file. Events are mutated in place and the
// document is serialized back through the same backend it was read with:
// go-astisub for SRT, the native section-preserving parser for ASS/SSA.
type Document struct {
	format string
	events []*Event
	srt    *astisub.Subtitles
	script *assScript
}

var supportedExtensions = map[string]bool{
	".ass": true,
	".srt": true,
	".ssa": true,
}

// LoadSubtitleFile reads an .srt, .ass or .ssa file into a Document.
func LoadSubtitleFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("unsupported subtitle format %q: supported formats are ASS, SRT, SSA", ext)
	}

	if ext == ".srt" {
		subs, err := astisub.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse subtitle file: %w", err)
		}
		doc := &Document{format: ext, srt: subs}
		for _, item := range subs.Items {
			lines := make([]string, len(item.Lines))
			for i, line := range item.Lines {
				lines[i] = line.String()
			}
			doc.events = append(doc.events, &Event{Text: strings.Join(lines, "\n")})
		}
		return doc, nil
	}

	script, err := parseASSFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{format: ext, script: script, events: script.events()}, nil
}

// Events returns every event in document order.
func (d *Document) Events() []*Event {
	return d.events
}

// Dialogue returns the non-comment events, the only ones translation touches.
func (d *Document) Dialogue() []*Event {
	var dialogue []*Event
	for _, ev := range d.events {
		if !ev.Comment {
			dialogue = append(dialogue, ev)
		}
	}
	return dialogue
}

// LineBreak returns the forced-line-break marker for the document's format,
// used to join translated and original text in dual-subtitle mode.
func (d *Document) LineBreak() string {
	if d.format == ".srt" {
		return "\n"
	}
	return `\N`
}

// Save serializes the document, with any translated event text, to path.
func (d *Document) Save(path string) error {
	if d.format == ".srt" {
		for i, item := range d.srt.Items {
			if i >= len(d.events) {
				break
			}
			var lines []astisub.Line
			for _, text := range strings.Split(d.events[i].Text, "\n") {
				lines = append(lines, astisub.Line{Items: []astisub.LineItem{{Text: text}}})
			}
			item.Lines = lines
		}
		return d.srt.Write(path)
	}
	return d.script.writeFile(path)
}
