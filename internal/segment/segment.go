// Package segment splits raw field text into candidate units for
// classification. Splitting is purely heuristic and total: any input,
// including empty or unstructured text, yields a (possibly empty) sequence.
package segment

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Options controls segmentation behavior per extractor
type Options struct {
	MinLength int // Units shorter than this are dropped as noise
}

// DefaultMinLength applies when Options.MinLength is zero
const DefaultMinLength = 10

var (
	bulletRe   = regexp.MustCompile(`^\s*(?:[-•*]|\d+[.)])\s+`)
	lineSplit  = regexp.MustCompile(`\r?\n`)
	sentenceRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
)

// Segment splits text into trimmed candidate units. Primary split is on
// line breaks and bullet/numbered-list markers. When that yields too few
// units (<=2) for a long input (>100 chars), the text is re-split on
// sentence punctuation so free-form paragraphs still decompose.
func Segment(text string, opts Options) []string {
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	if looksLikeHTML(text) {
		text = StripHTML(text)
	}

	units := splitLines(text, minLen)

	// Paragraph fallback: prose without bullets must still decompose
	if len(units) <= 2 && len(strings.TrimSpace(text)) > 100 {
		if sentences := splitSentences(text, minLen); len(sentences) > len(units) {
			units = sentences
		}
	}

	return units
}

// splitLines splits on newlines, stripping bullet and list markers
func splitLines(text string, minLen int) []string {
	var units []string
	for _, line := range lineSplit.Split(text, -1) {
		line = strings.TrimSpace(line)
		line = bulletRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if len(line) >= minLen {
			units = append(units, line)
		}
	}
	return units
}

// splitSentences splits on sentence-ending punctuation
func splitSentences(text string, minLen int) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var units []string
	for _, part := range sentenceRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		part = bulletRe.ReplaceAllString(part, "")
		part = strings.TrimSpace(part)
		if len(part) >= minLen {
			units = append(units, part)
		}
	}
	return units
}

// looksLikeHTML detects markup pasted from email or web exports
func looksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<p>") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "<li>")
}

// StripHTML extracts visible text from markup, skipping script/style nodes.
// Block-level elements become line breaks so list structure survives.
func StripHTML(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// Parse failures degrade to the raw input, never an error
		return markup
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p", "div", "li", "br", "tr", "h1", "h2", "h3", "h4":
				buf.WriteString("\n")
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String()
}
