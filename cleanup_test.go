package main

import "testing"

func TestReduceRepeatedRuns(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hahahahaha", "haha"},
		{"no repeats here", "no repeats here"},
		{"wowowowowow!", "wowow!"},
	}
	for _, c := range cases {
		if got := reduceRepeatedRuns(c.in); got != c.want {
			t.Errorf("reduceRepeatedRuns(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanEventsKeepsKaraokeTags(t *testing.T) {
	events := []*Event{
		{Text: `{\k20}{\k20}{\k20}lalalalala`},
		{Text: "plain hahahahaha", Comment: true},
	}
	cleanEvents(events)
	if events[0].Text != `{\k20}{\k20}{\k20}lala` {
		t.Errorf("karaoke line = %q", events[0].Text)
	}
	if events[1].Text != "plain hahahahaha" {
		t.Errorf("comment event was cleaned: %q", events[1].Text)
	}
}
