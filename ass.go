package main

import (
	"fmt"
	"os"
	"strings"
)

// assScript is a parsed ASS/SSA file. Every line outside the [Events]
// section (and every non-event line inside it) is kept verbatim, so style
// definitions, script info and attachments round-trip byte-for-byte.
type assScript struct {
	lines []assLine
}

type assLine struct {
	raw   string
	event *assEvent // nil for verbatim lines
}

type assEvent struct {
	kind string // "Dialogue" or "Comment"
	head string // field columns up to the text column, verbatim
	ev   *Event
}

func parseASSFile(path string) (*assScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	return parseASS(string(data))
}

func parseASS(content string) (*assScript, error) {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	script := &assScript{}
	inEvents := false
	// Standard Format line has 10 columns for both SSA v4 and ASS v4+.
	fieldCount := 10

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inEvents = strings.EqualFold(trimmed, "[events]")
			script.lines = append(script.lines, assLine{raw: line})
			continue
		}
		if !inEvents {
			script.lines = append(script.lines, assLine{raw: line})
			continue
		}

		key, rest, found := strings.Cut(line, ":")
		switch {
		case found && strings.EqualFold(strings.TrimSpace(key), "format"):
			fieldCount = len(strings.Split(rest, ","))
			script.lines = append(script.lines, assLine{raw: line})
		case found && (key == "Dialogue" || key == "Comment"):
			head, text := splitEventColumns(rest, fieldCount)
			script.lines = append(script.lines, assLine{event: &assEvent{
				kind: key,
				head: head,
				ev:   &Event{Comment: key == "Comment", Text: text},
			}})
		default:
			script.lines = append(script.lines, assLine{raw: line})
		}
	}

	return script, nil
}

// splitEventColumns cuts an event value into its fixed field columns and the
// free-form text column. Text is always the last column and may itself
// contain commas, so only fieldCount-1 separators are consumed.
func splitEventColumns(rest string, fieldCount int) (head, text string) {
	idx := 0
	for i := 0; i < fieldCount-1; i++ {
		j := strings.Index(rest[idx:], ",")
		if j < 0 {
			return rest, ""
		}
		idx += j + 1
	}
	return rest[:idx], rest[idx:]
}

func (s *assScript) events() []*Event {
	var evs []*Event
	for _, line := range s.lines {
		if line.event != nil {
			evs = append(evs, line.event.ev)
		}
	}
	return evs
}

func (s *assScript) render() string {
	var b strings.Builder
	for i, line := range s.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if line.event != nil {
			b.WriteString(line.event.kind)
			b.WriteString(":")
			b.WriteString(line.event.head)
			b.WriteString(line.event.ev.Text)
		} else {
			b.WriteString(line.raw)
		}
	}
	return b.String()
}

func (s *assScript) writeFile(path string) error {
	return os.WriteFile(path, []byte(s.render()), 0644)
}
