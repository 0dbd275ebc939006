package docproc

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/docent/internal/tutor"
)

// headingPatterns match lines that open a new section: chapter/section
// markers, numbered items, and all-caps headings.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Chapter \d+`),
	regexp.MustCompile(`^Section \d+`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
	regexp.MustCompile(`^[A-Z][A-Z\s]{3,}$`),
	regexp.MustCompile(`^\d+\.\s+[^\n]{0,100}$`),
}

// IdentifySections splits document text into titled sections for tutoring.
// Heading-like lines partition the text; when no headings are found it falls
// back to grouping chunks, then to equal parts, then to a single section, so
// a non-empty document always yields at least one section.
func (p *Processor) IdentifySections(text string) []tutor.Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	var (
		sections []tutor.Section
		title    string
		body     []string
	)

	flush := func(fallbackTitle string) {
		joined := strings.TrimSpace(strings.Join(body, "\n"))
		if joined != "" {
			t := title
			if t == "" {
				t = fallbackTitle
			}
			sections = append(sections, tutor.Section{Title: t, Text: joined})
		}
		body = nil
	}

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		// Skip blank lines before a section has any content.
		if stripped == "" && len(body) == 0 {
			continue
		}

		heading := false
		if stripped != "" {
			for _, pat := range headingPatterns {
				if pat.MatchString(stripped) {
					heading = true
					break
				}
			}
			// A short line immediately followed by substantial content
			// usually acts as a heading even without markup.
			if !heading && len(stripped) < 80 && len(stripped) > 3 {
				following := strings.TrimSpace(strings.Join(lines[i+1:min(i+4, len(lines))], " "))
				if len(following) > 100 {
					heading = true
				}
			}
		}

		switch {
		case heading && title != "":
			flush("")
			title = stripped
		case heading:
			title = stripped
		default:
			body = append(body, line)
			if title == "" && len(body) > 3 {
				// No heading seen yet; promote the first line to title.
				title = strings.TrimSpace(body[0])
				if title == "" {
					title = "Introduction"
				}
				rest := make([]string, len(body)-1)
				copy(rest, body[1:])
				body = rest
			}
		}
	}

	if title != "" || len(body) > 0 {
		flush("Final Section")
	}

	if len(sections) == 0 {
		sections = p.sectionsFromChunks(text)
	}
	if len(sections) == 0 {
		sections = equalParts(text, 5)
	}
	if len(sections) == 0 {
		sections = []tutor.Section{{Title: "Document Content", Text: text}}
	}
	return sections
}

// sectionsFromChunks groups embedding chunks into roughly five sections.
func (p *Processor) sectionsFromChunks(text string) []tutor.Section {
	chunks := p.ChunkText(text)
	if len(chunks) == 0 {
		return nil
	}

	per := len(chunks) / 5
	if per < 1 {
		per = 1
	}

	var sections []tutor.Section
	for i := 0; i < len(chunks); i += per {
		group := chunks[i:min(i+per, len(chunks))]
		parts := make([]string, len(group))
		for j, c := range group {
			parts[j] = c.Text
		}
		sections = append(sections, tutor.Section{
			Title: fmt.Sprintf("Section %d", len(sections)+1),
			Text:  strings.Join(parts, "\n\n"),
		})
	}
	return sections
}

// equalParts slices text into n consecutive pieces of similar length.
func equalParts(text string, n int) []tutor.Section {
	if n < 1 || text == "" {
		return nil
	}

	var sections []tutor.Section
	partLen := len(text) / n
	for i := 0; i < n; i++ {
		start := i * partLen
		end := len(text)
		if i < n-1 {
			end = (i + 1) * partLen
		}
		for start < end && !utf8.RuneStart(text[start]) {
			start++
		}
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}
		piece := strings.TrimSpace(text[start:end])
		if piece != "" {
			sections = append(sections, tutor.Section{
				Title: fmt.Sprintf("Part %d", i+1),
				Text:  piece,
			})
		}
	}
	return sections
}
