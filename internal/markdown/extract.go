// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"regexp"
	"strings"
)

// DefaultExcerptLength is the maximum excerpt length when none is given.
const DefaultExcerptLength = 160

// maxFallbackTitleLen bounds titles taken from a non-heading first line.
const maxFallbackTitleLen = 100

var (
	titleRe   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	headingRe = regexp.MustCompile(`(?m)^#+ .+$`)
	boldRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.+?)\*`)
	linkRe    = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
)

// ExtractTitle derives an article title from generated Markdown content:
// the first level-1 heading if present, otherwise the first 100 characters
// of the first line.
func ExtractTitle(content string) string {
	if m := titleRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}

	firstLine, _, _ := strings.Cut(content, "\n")
	firstLine = strings.TrimSpace(firstLine)
	if runes := []rune(firstLine); len(runes) > maxFallbackTitleLen {
		return string(runes[:maxFallbackTitleLen])
	}
	return firstLine
}

// Excerpt derives a short plain-text excerpt from Markdown content:
// headings are removed, bold/italic/link markers are stripped, and the
// first paragraph is truncated to maxLength characters. When truncation
// happens the result is exactly maxLength characters and ends with "...".
// A maxLength <= 0 selects DefaultExcerptLength.
func Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	// The truncated form always ends with the three-dot marker, so the
	// result can never be shorter than the marker itself.
	if maxLength < len("...") {
		maxLength = len("...")
	}

	plain := headingRe.ReplaceAllString(content, "")
	plain = boldRe.ReplaceAllString(plain, "$1")
	plain = italicRe.ReplaceAllString(plain, "$1")
	plain = linkRe.ReplaceAllString(plain, "$1")
	plain = strings.TrimSpace(plain)

	paragraph, _, _ := strings.Cut(plain, "\n\n")

	runes := []rune(paragraph)
	if len(runes) <= maxLength {
		return paragraph
	}
	return string(runes[:maxLength-3]) + "..."
}
