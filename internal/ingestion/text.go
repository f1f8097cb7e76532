package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpace   = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes decoded text while keeping its line structure.
// Line-oriented extraction depends on that structure, so lines are never merged.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\x00", "")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces inside a line and keeps leading
// indentation. Markdown headings lose their indentation and PDF bullet
// glyphs become "- ".
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	content := innerSpace.ReplaceAllString(trimmed, " ")
	for _, glyph := range []string{"• ", "· ", "▪ "} {
		if strings.HasPrefix(content, glyph) {
			content = "- " + strings.TrimPrefix(content, glyph)
			break
		}
	}
	return strings.Repeat(" ", indent) + content
}
