// Package parse extracts links and product records from the demo site's
// HTML. Both parsers are pure functions over the page text: they locate
// elements by structural markers and fail only when a required marker is
// absent, never on malformed surrounding markup.
package parse

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aluiziolira/book-spider/models"
)

// List extracts the detail-page links of a listing page, in document
// order, and the next-page link if one exists. Every href is resolved
// against baseURL. A page without a single product entry is considered
// unrecognizable; anything partially parseable yields whatever was found.
func List(html, baseURL string) ([]models.PageLink, *models.PageLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, &ParseError{SourceURL: baseURL, Field: "document", Err: err}
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, &ParseError{SourceURL: baseURL, Field: "base_url", Err: err}
	}

	pods := doc.Find("article.product_pod")
	if pods.Length() == 0 {
		return nil, nil, &ParseError{SourceURL: baseURL, Field: "list"}
	}

	var details []models.PageLink
	pods.Each(func(_ int, pod *goquery.Selection) {
		href, ok := pod.Find("h3 a").Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		if abs := resolve(base, href); abs != "" {
			details = append(details, models.PageLink{URL: abs, Kind: models.LinkDetail})
		}
	})

	// The first matching anchor wins if the page ever carries more than one.
	var next *models.PageLink
	if href, ok := doc.Find("li.next a").First().Attr("href"); ok {
		if abs := resolve(base, href); abs != "" {
			next = &models.PageLink{URL: abs, Kind: models.LinkNextPage}
		}
	}

	return details, next, nil
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
