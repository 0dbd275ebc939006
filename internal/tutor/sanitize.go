package tutor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// thinSectionChars is the length below which a section's own text is
	// considered too thin to teach from and recovery kicks in.
	thinSectionChars = 100

	// recoverySliceChars is how much full-document text is pulled in when
	// recovering a thin section by title position.
	recoverySliceChars = 2000

	// firstSectionSliceChars is the recovery slice for section 0 when the
	// title cannot be located in the full text.
	firstSectionSliceChars = 1500

	// maxSectionChars caps the text handed to prompts and the UI.
	maxSectionChars = 2000

	// minUsableChars is the floor below which sanitized text is replaced
	// with a placeholder.
	minUsableChars = 50
)

// sectionPlaceholder stands in when no usable text survives sanitizing.
const sectionPlaceholder = "This section doesn't have much extracted text, but we can still talk through its ideas together."

// sanitizeSectionText returns teachable text for the section at index.
// Section splitting upstream sometimes yields title-only or near-empty
// sections; this recovers content from the full document text, strips
// header noise, and bounds the result so prompts stay within budget.
func sanitizeSectionText(sections []Section, index int, fullText string) string {
	text := sections[index].Text

	if utf8.RuneCountInString(text) < thinSectionChars {
		text = recoverSectionText(sections, index, fullText)
	}

	text = cleanLines(text)

	if utf8.RuneCountInString(text) > maxSectionChars {
		text = truncateRunes(text, maxSectionChars) + "..."
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minUsableChars {
		return sectionPlaceholder
	}
	return strings.TrimSpace(text)
}

// recoverSectionText pulls replacement content for a thin section. It tries
// the title's position in the full text first, then positional fallbacks.
func recoverSectionText(sections []Section, index int, fullText string) string {
	text := sections[index].Text
	title := strings.TrimSpace(sections[index].Title)

	if title != "" {
		if pos := strings.Index(fullText, title); pos >= 0 {
			after := fullText[pos+len(title):]
			return truncateRunes(after, recoverySliceChars)
		}
	}

	if index == 0 {
		return truncateRunes(fullText, firstSectionSliceChars)
	}

	if index+1 < len(sections) {
		next := sections[index+1].Text
		return strings.TrimSpace(text + "\n\n" + next)
	}

	return text
}

// cleanLines collapses runs of blank lines and drops near-empty lines that
// look like headers or page metadata (separators, page numbers, stray
// bullets).
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		if isHeaderish(trimmed) {
			continue
		}
		out = append(out, line)
	}

	// Drop a trailing blank left by the collapse.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// isHeaderish reports whether a trimmed, non-blank line carries no teaching
// content: very short fragments and lines with no letters at all.
func isHeaderish(trimmed string) bool {
	if utf8.RuneCountInString(trimmed) <= 3 {
		return true
	}
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// truncateRunes cuts s to at most n runes without splitting a character.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
