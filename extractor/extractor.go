// Package extractor pulls the main article body out of raw HTML, discarding
// navigation, ads, and other boilerplate. It combines a goquery pre-clean
// with go-readability extraction and a paragraph filter tuned for Spanish
// news sites.
package extractor

import (
	"net/url"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Ch4s3/langler/domain"
)

// minParagraphLen filters out short paragraphs which are likely
// navigation or UI fragments rather than article text.
const minParagraphLen = 20

// endMarkers signal the end of the article body on supported sources.
// Paragraph collection stops at the first paragraph containing one,
// truncating that paragraph at the marker.
var endMarkers = []string{
	"Tu suscripción",
	"Sobre la firma",
	"Sobre el autor",
	"Suscríbete",
	"Nuevo curso",
	"términos y condiciones de la suscripción",
}

const (
	elPaisBodyRegion   = `[data-dtm-region="articulo_cuerpo"]`
	elPaisHeaderRegion = `[data-dtm-region="articulo_cabecera"] h1`
)

// Extract locates the article inside raw HTML and returns its title, plain
// text content (paragraphs joined by blank lines), excerpt, and author.
// sourceURL may be empty; when it points at a known source (El País) the
// extraction is scoped to that site's article body region. Extract returns
// domain.ErrNoArticleContent when no usable body can be located.
func Extract(raw string, sourceURL string) (*domain.ExtractedArticle, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, domain.ErrNoArticleContent
	}

	isElPais := strings.Contains(sourceURL, "elpais.com")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return nil, domain.ErrNoArticleContent
	}

	article := &domain.ExtractedArticle{
		Title:   extractTitle(doc, isElPais),
		Excerpt: metaContent(doc, "meta[name='description']", "meta[property='og:description']"),
		Author:  metaContent(doc, "meta[name='author']", "meta[property='article:author']"),
	}

	// Scope El País pages to the article body region before any cleaning so
	// related-article teasers outside the region never leak into the text.
	bodyHTML := trimmed
	if isElPais {
		if region := doc.Find(elPaisBodyRegion).First(); region.Length() > 0 {
			if regionHTML, err := goquery.OuterHtml(region); err == nil && regionHTML != "" {
				bodyHTML = regionHTML
			}
		}
	}

	article.Content = extractBodyText(bodyHTML, sourceURL)
	if article.Content == "" {
		return nil, domain.ErrNoArticleContent
	}

	article.Length = len(article.Content)
	if article.Excerpt == "" {
		article.Excerpt = firstParagraph(article.Content)
	}

	return article, nil
}

// extractBodyText converts article HTML into plain text paragraphs. It
// pre-cleans obvious non-content elements, runs go-readability over the
// remainder, and falls back to direct paragraph collection when readability
// produces nothing usable.
func extractBodyText(html, sourceURL string) string {
	cleaned := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		doc.Find("head, script, style, noscript, aside, nav, header, footer").Remove()
		doc.Find("iframe, embed, object, video, audio, canvas").Remove()
		doc.Find("[class*='social'], [class*='share'], [class*='comment'], [id*='comment']").Remove()
		if cleanedHTML, err := doc.Html(); err == nil && cleanedHTML != "" {
			cleaned = cleanedHTML
		}
	}

	var base *url.URL
	if sourceURL != "" {
		base, _ = url.Parse(sourceURL)
	}

	if article, err := readability.FromReader(strings.NewReader(cleaned), base); err == nil {
		var htmlBuf strings.Builder
		if err := article.RenderHTML(&htmlBuf); err == nil {
			if text := collectParagraphs(htmlBuf.String()); text != "" {
				return text
			}
		}

		var textBuf strings.Builder
		if err := article.RenderText(&textBuf); err == nil {
			if text := truncateAtEndMarker(normalizeWhitespace(textBuf.String())); len(text) >= minParagraphLen {
				return text
			}
		}
	}

	return collectParagraphs(cleaned)
}

// collectParagraphs walks <p> elements in document order, truncates at the
// first end marker, and keeps paragraphs long enough to be article text.
func collectParagraphs(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strippedFallback(html)
	}

	var paragraphs []string
	stopped := false

	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := normalizeWhitespace(s.Text())

		for _, marker := range endMarkers {
			if idx := strings.Index(text, marker); idx >= 0 {
				if truncated := strings.TrimSpace(text[:idx]); len(truncated) >= minParagraphLen {
					paragraphs = append(paragraphs, truncated)
				}
				stopped = true
				return false
			}
		}

		if len(text) >= minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
		return true
	})

	if len(paragraphs) == 0 && !stopped {
		return strippedFallback(html)
	}

	return strings.Join(paragraphs, "\n\n")
}

// strippedFallback strips every tag when no paragraph structure exists.
func strippedFallback(html string) string {
	text := truncateAtEndMarker(normalizeWhitespace(bluemonday.StrictPolicy().Sanitize(html)))
	if len(text) < minParagraphLen {
		return ""
	}
	return text
}

func truncateAtEndMarker(text string) string {
	for _, marker := range endMarkers {
		if idx := strings.Index(text, marker); idx >= 0 {
			text = strings.TrimSpace(text[:idx])
		}
	}
	return text
}

// extractTitle resolves the article title. El País pages prefer the h1
// inside the article header region, then a filtered h1 scan; other pages use
// the <title> tag, og:title, and the first h1, in that order.
func extractTitle(doc *goquery.Document, isElPais bool) string {
	if isElPais {
		if title := strings.TrimSpace(doc.Find(elPaisHeaderRegion).First().Text()); title != "" {
			return title
		}

		var title string
		doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			candidate := strings.TrimSpace(s.Text())
			if len(candidate) > 20 &&
				!strings.EqualFold(candidate, "EL PAÍS") &&
				!strings.Contains(candidate, "Seleccione") &&
				!strings.Contains(candidate, "suscríbete") {
				title = candidate
				return false
			}
			return true
		})
		if title != "" {
			return title
		}
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	if ogTitle, ok := doc.Find("meta[property='og:title']").First().Attr("content"); ok {
		if title := strings.TrimSpace(ogTitle); title != "" {
			return title
		}
	}

	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// metaContent returns the first non-empty content attribute among selectors.
func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if trimmed := strings.TrimSpace(content); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// firstParagraph returns the opening paragraph of extracted content.
func firstParagraph(content string) string {
	if idx := strings.Index(content, "\n\n"); idx >= 0 {
		return content[:idx]
	}
	return content
}

// normalizeWhitespace collapses runs of whitespace into single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
