package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const noiseSelector = "nav, footer, header, script, style, noscript, svg, form, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// JobPostingSelectors returns selectors for the description block of common job board pages,
// most specific first
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// HTMLToText extracts the readable text of an HTML page. Noise elements are removed, the
// first matching content selector (or the body) is kept, and block structure is preserved
// as lines: list items become "- " bullets and headings stand on their own line.
func HTMLToText(html string, contentSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	if len(contentSelectors) == 0 {
		contentSelectors = JobPostingSelectors()
	}
	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if s := doc.Find(selector); s.Length() > 0 {
			main = s.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	main.Find("br").ReplaceWithHtml("\n")
	main.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n- ")
		s.AppendHtml("\n")
	})
	main.Find("h1, h2, h3, h4, h5, h6, p, div, tr, section, ul, ol, dt, dd").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n")
		s.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(main.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return CleanText(strings.Join(lines, "\n")), nil
}

// LooksLikeHTML reports whether content appears to be an HTML document or fragment
func LooksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 512 {
		head = head[:512]
	}
	for _, marker := range []string{"<!doctype html", "<html", "<body", "<div", "<p>", "<ul", "<h1", "<h2"} {
		if strings.Contains(head, marker) {
			return true
		}
	}
	return false
}
