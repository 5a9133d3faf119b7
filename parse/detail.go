package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aluiziolira/book-spider/models"
)

var (
	priceRe = regexp.MustCompile(`\d+\.\d{2}`)
	stockRe = regexp.MustCompile(`\d+`)
)

// Detail extracts one product record from a detail page. Category comes
// from the breadcrumb, title from the page heading, price from the price
// element (currency symbol stripped), stock from the availability text
// ("In stock (22 available)"), and the product code from the row of the
// specifications table labelled UPC. A missing element or a non-numeric
// price/stock fails with *ParseError rather than defaulting.
func Detail(html, sourceURL string) (*models.Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{SourceURL: sourceURL, Field: "document", Err: err}
	}

	category := text(doc.Find("ul.breadcrumb li:nth-child(3) a").First())
	if category == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "category"}
	}

	title := text(doc.Find("h1").First())
	if title == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "title"}
	}

	priceText := text(doc.Find(".price_color").First())
	if priceText == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "price"}
	}
	priceMatch := priceRe.FindString(priceText)
	if priceMatch == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "price", Err: fmt.Errorf("no decimal value in %q", priceText)}
	}
	price, err := strconv.ParseFloat(priceMatch, 64)
	if err != nil {
		return nil, &ParseError{SourceURL: sourceURL, Field: "price", Err: err}
	}

	stockText := text(doc.Find(".instock").First())
	if stockText == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "stock"}
	}
	stockMatch := stockRe.FindString(stockText)
	if stockMatch == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "stock", Err: fmt.Errorf("no count in %q", stockText)}
	}
	stock, err := strconv.Atoi(stockMatch)
	if err != nil {
		return nil, &ParseError{SourceURL: sourceURL, Field: "stock", Err: err}
	}

	code := productCode(doc)
	if code == "" {
		return nil, &ParseError{SourceURL: sourceURL, Field: "code"}
	}

	return &models.Item{
		Category: category,
		Title:    title,
		Price:    price,
		Stock:    stock,
		Code:     code,
		URL:      sourceURL,
	}, nil
}

// productCode looks the UPC up by its row label rather than by position,
// so reordered specification tables still parse.
func productCode(doc *goquery.Document) string {
	code := ""
	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := text(row.Find("th").First())
		if strings.EqualFold(label, "UPC") {
			code = text(row.Find("td").First())
			return false
		}
		return true
	})
	return code
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
