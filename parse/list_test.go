package parse

import (
	"errors"
	"testing"

	"github.com/aluiziolira/book-spider/models"
)

const listPageHTML = `<html><body>
<section>
<div>
<article class="product_pod">
  <h3><a href="catalogue/a-light-in-the-attic_1000/index.html" title="A Light in the Attic">A Light in the ...</a></h3>
  <p class="price_color">£51.77</p>
</article>
<article class="product_pod">
  <h3><a href="catalogue/tipping-the-velvet_999/index.html" title="Tipping the Velvet">Tipping the Velvet</a></h3>
  <p class="price_color">£53.74</p>
</article>
</div>
<ul class="pager">
  <li class="current">Page 1 of 50</li>
  <li class="next"><a href="catalogue/page-2.html">next</a></li>
</ul>
</section>
</body></html>`

const lastListPageHTML = `<html><body>
<section>
<article class="product_pod">
  <h3><a href="frankenstein_20/index.html" title="Frankenstein">Frankenstein</a></h3>
</article>
<ul class="pager">
  <li class="previous"><a href="page-49.html">previous</a></li>
</ul>
</section>
</body></html>`

func TestListExtractsDetailLinksInOrder(t *testing.T) {
	details, next, err := List(listPageHTML, "https://books.toscrape.com/index.html")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{
		"https://books.toscrape.com/catalogue/a-light-in-the-attic_1000/index.html",
		"https://books.toscrape.com/catalogue/tipping-the-velvet_999/index.html",
	}
	if len(details) != len(want) {
		t.Fatalf("details = %d links, want %d", len(details), len(want))
	}
	for i, link := range details {
		if link.URL != want[i] {
			t.Errorf("details[%d] = %q, want %q", i, link.URL, want[i])
		}
		if link.Kind != models.LinkDetail {
			t.Errorf("details[%d].Kind = %v, want LinkDetail", i, link.Kind)
		}
	}

	if next == nil {
		t.Fatal("next = nil, want next-page link")
	}
	if next.URL != "https://books.toscrape.com/catalogue/page-2.html" {
		t.Errorf("next.URL = %q", next.URL)
	}
	if next.Kind != models.LinkNextPage {
		t.Errorf("next.Kind = %v, want LinkNextPage", next.Kind)
	}
}

func TestListLastPageHasNoNext(t *testing.T) {
	details, next, err := List(lastListPageHTML, "https://books.toscrape.com/catalogue/page-50.html")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("details = %d links, want 1", len(details))
	}
	if got := details[0].URL; got != "https://books.toscrape.com/catalogue/frankenstein_20/index.html" {
		t.Errorf("details[0] = %q", got)
	}
	if next != nil {
		t.Errorf("next = %v, want nil", next)
	}
}

func TestListFirstNextAnchorWins(t *testing.T) {
	html := `<html><body>
<article class="product_pod"><h3><a href="b_1/index.html">B</a></h3></article>
<ul class="pager">
  <li class="next"><a href="page-2.html">next</a></li>
  <li class="next"><a href="page-3.html">next</a></li>
</ul>
</body></html>`

	_, next, err := List(html, "https://books.toscrape.com/catalogue/page-1.html")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if next == nil {
		t.Fatal("next = nil, want link")
	}
	if next.URL != "https://books.toscrape.com/catalogue/page-2.html" {
		t.Errorf("next.URL = %q, want first anchor in document order", next.URL)
	}
}

func TestListToleratesPartiallyMalformedEntries(t *testing.T) {
	html := `<html><body>
<article class="product_pod"><h3><a href="good_1/index.html">Good</a></h3></article>
<article class="product_pod"><h3><a href="">Broken</a></h3></article>
<article class="product_pod"><h3>No anchor at all</h3></article>
</body></html>`

	details, next, err := List(html, "https://books.toscrape.com/catalogue/page-1.html")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("details = %d links, want 1 (broken entries dropped)", len(details))
	}
	if next != nil {
		t.Errorf("next = %v, want nil", next)
	}
}

func TestListUnrecognizablePage(t *testing.T) {
	_, _, err := List("<html><body><p>maintenance</p></body></html>", "https://books.toscrape.com")
	if err == nil {
		t.Fatal("List() error = nil, want ParseError")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Field != "list" {
		t.Errorf("Field = %q, want %q", perr.Field, "list")
	}
}
