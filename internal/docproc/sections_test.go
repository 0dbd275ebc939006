package docproc

import (
	"strings"
	"testing"
)

// prose builds a line long enough that the short-line heading heuristic
// cannot mistake it for a title.
func prose(sentence string) string {
	return strings.Repeat(sentence+" ", 2) + sentence
}

func TestIdentifySectionsChapterHeadings(t *testing.T) {
	text := strings.Join([]string{
		"Chapter 1",
		prose("The opening chapter introduces the main ideas in plenty of detail."),
		"",
		"Chapter 2",
		prose("The second chapter builds on the first with more involved material."),
	}, "\n")

	p := NewProcessor()
	sections := p.IdentifySections(text)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Chapter 1" {
		t.Errorf("sections[0].Title = %q", sections[0].Title)
	}
	if sections[1].Title != "Chapter 2" {
		t.Errorf("sections[1].Title = %q", sections[1].Title)
	}
	if !strings.Contains(sections[0].Text, "opening chapter") {
		t.Errorf("sections[0].Text missing body: %q", sections[0].Text)
	}
}

func TestIdentifySectionsNumberedAndAllCaps(t *testing.T) {
	text := strings.Join([]string{
		"1. Getting Started",
		prose("Everything a newcomer needs to know before the real work begins here."),
		"",
		"ADVANCED TOPICS",
		prose("Material for readers who already finished the earlier walkthroughs."),
	}, "\n")

	p := NewProcessor()
	sections := p.IdentifySections(text)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "1. Getting Started" {
		t.Errorf("sections[0].Title = %q", sections[0].Title)
	}
	if sections[1].Title != "ADVANCED TOPICS" {
		t.Errorf("sections[1].Title = %q", sections[1].Title)
	}
}

func TestIdentifySectionsShortLineHeuristic(t *testing.T) {
	text := strings.Join([]string{
		"About whales",
		prose("Whales are large marine mammals found in every ocean on the planet."),
	}, "\n")

	p := NewProcessor()
	sections := p.IdentifySections(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "About whales" {
		t.Errorf("Title = %q, want the short leading line", sections[0].Title)
	}
}

func TestIdentifySectionsPromotesFirstLine(t *testing.T) {
	line := prose("Nothing in this document resembles a heading of any recognized shape.")
	text := strings.Join([]string{line, line, line, line, line}, "\n")

	p := NewProcessor()
	sections := p.IdentifySections(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != line {
		t.Errorf("Title = %q, want the first line", sections[0].Title)
	}
	if strings.Count(sections[0].Text, line) != 4 {
		t.Errorf("body should hold the remaining 4 lines: %q", sections[0].Text)
	}
}

func TestIdentifySectionsChunkFallback(t *testing.T) {
	// Headings with no body at all leave the heading pass empty-handed.
	text := "Chapter 1\nChapter 2\nChapter 3"

	p := NewProcessor()
	sections := p.IdentifySections(text)

	if len(sections) == 0 {
		t.Fatal("expected fallback sections, got none")
	}
	if !strings.HasPrefix(sections[0].Title, "Section ") {
		t.Errorf("fallback title = %q, want Section N", sections[0].Title)
	}
}

func TestIdentifySectionsEmpty(t *testing.T) {
	p := NewProcessor()
	if got := p.IdentifySections(""); got != nil {
		t.Errorf("expected nil for empty text, got %d sections", len(got))
	}
	if got := p.IdentifySections(" \n\t "); got != nil {
		t.Errorf("expected nil for blank text, got %d sections", len(got))
	}
}

func TestIdentifySectionsNeverEmptyForContent(t *testing.T) {
	inputs := []string{
		"single line of ordinary content",
		"Chapter 9",
		strings.Repeat("x", 3000),
		"Intro\n" + prose("A heading followed by enough content to satisfy the heuristics easily."),
	}

	p := NewProcessor()
	for _, in := range inputs {
		if got := p.IdentifySections(in); len(got) == 0 {
			t.Errorf("IdentifySections(%.30q...) returned no sections", in)
		}
	}
}
