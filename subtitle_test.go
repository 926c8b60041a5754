package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,000
Hello world

2
00:00:03,000 --> 00:00:04,000
Goodbye
cruel world

`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSubtitleFileUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "subs.vtt", "WEBVTT\n")
	if _, err := LoadSubtitleFile(path); err == nil {
		t.Fatal("expected error for .vtt input")
	}
}

func TestLoadSubtitleFileSRT(t *testing.T) {
	path := writeTemp(t, "subs.srt", sampleSRT)
	doc, err := LoadSubtitleFile(path)
	if err != nil {
		t.Fatal(err)
	}
	events := doc.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Text != "Hello world" {
		t.Errorf("first event = %q", events[0].Text)
	}
	if events[1].Text != "Goodbye\ncruel world" {
		t.Errorf("second event = %q", events[1].Text)
	}
	if doc.LineBreak() != "\n" {
		t.Errorf("srt line break = %q", doc.LineBreak())
	}
}

func TestDocumentSaveSRT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "subs.srt")
	if err := os.WriteFile(input, []byte(sampleSRT), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadSubtitleFile(input)
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range doc.Events() {
		ev.Text = strings.ToUpper(ev.Text)
	}

	output := filepath.Join(dir, "out.srt")
	if err := doc.Save(output); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.Contains(got, "HELLO WORLD") {
		t.Errorf("translated text missing from output:\n%s", got)
	}
	if !strings.Contains(got, "GOODBYE\nCRUEL WORLD") {
		t.Errorf("multi-line event not preserved:\n%s", got)
	}
}

func TestDocumentDialogueFiltersComments(t *testing.T) {
	path := writeTemp(t, "subs.ass", sampleASS)
	doc, err := LoadSubtitleFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Events()) != 4 {
		t.Fatalf("got %d events, want 4", len(doc.Events()))
	}
	if len(doc.Dialogue()) != 3 {
		t.Fatalf("got %d dialogue events, want 3", len(doc.Dialogue()))
	}
	if doc.LineBreak() != `\N` {
		t.Errorf("ass line break = %q", doc.LineBreak())
	}
}

func TestDocumentSaveASSPreservesLayout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "subs.ass")
	if err := os.WriteFile(input, []byte(sampleASS), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadSubtitleFile(input)
	if err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.ass")
	if err := doc.Save(output); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleASS {
		t.Errorf("untouched document should save byte-identically:\n%s", data)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cases := []struct{ input, lang, want string }{
		{"movie.ass", "ar", "movie_ar.ass"},
		{"dir/show.srt", "zh-CN", "dir/show_zh-CN.srt"},
		{"noext", "en", "noext_en"},
	}
	for _, c := range cases {
		if got := defaultOutputPath(c.input, c.lang); got != c.want {
			t.Errorf("defaultOutputPath(%q, %q) = %q, want %q", c.input, c.lang, got, c.want)
		}
	}
}
