// Package parser converts HTML note bodies to plain text before analysis.
package parser

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors are elements whose text should end on its own line.
const blockSelectors = "h1,h2,h3,h4,h5,h6,p,li,pre,blockquote,tr,td,th,div,section,article"

// htmlTagPattern matches the opening tags notes pasted from editors usually carry.
var htmlTagPattern = regexp.MustCompile(`(?i)<(html|body|p|div|br|span|h[1-6]|ul|ol|li|a|pre|code|table|tr|td|strong|em|b|i|blockquote)(\s[^>]*)?/?>`)

type Parser struct{}

// LooksLikeHTML reports whether content contains recognizable HTML markup.
func LooksLikeHTML(content string) bool {
	return htmlTagPattern.MatchString(content)
}

// PlainText extracts readable text from an HTML fragment or document.
// Scripts and styles are dropped; block elements are separated by newlines.
func (p *Parser) PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script,style,noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelectors).Each(func(i int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return normalizeText(doc.Text()), nil
}

// ContentText returns content unchanged unless it looks like HTML, in which case
// the extracted text is returned. Extraction failures fall back to the raw content.
func (p *Parser) ContentText(content string) string {
	if !LooksLikeHTML(content) {
		return content
	}
	text, err := p.PlainText(content)
	if err != nil {
		return content
	}
	return text
}

// normalizeText trims every line and drops blank ones.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), len(input)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
