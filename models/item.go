// Package models defines the data records produced by the spider.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Item is one extracted product record.
type Item struct {
	Category string  `csv:"category" json:"category"`
	Title    string  `csv:"title" json:"title"`
	Price    float64 `csv:"price" json:"price"`
	Stock    int     `csv:"stock" json:"stock"`
	Code     string  `csv:"code" json:"code"`
	URL      string  `csv:"-" json:"url"`
}

// Validate ensures the record satisfies the output invariant: all five
// fields present, price and stock non-negative.
func (i *Item) Validate() error {
	if i == nil {
		return fmt.Errorf("item is nil")
	}
	if strings.TrimSpace(i.Category) == "" {
		return fmt.Errorf("item missing category")
	}
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("item missing title")
	}
	if i.Price < 0 {
		return fmt.Errorf("negative price for %s", i.Title)
	}
	if i.Stock < 0 {
		return fmt.Errorf("negative stock for %s", i.Title)
	}
	if strings.TrimSpace(i.Code) == "" {
		return fmt.Errorf("item missing code for %s", i.Title)
	}
	return nil
}

// LinkKind discriminates links discovered on a list page.
type LinkKind int

const (
	// LinkDetail points at a single product's detail page.
	LinkDetail LinkKind = iota
	// LinkNextPage points at the next listing page.
	LinkNextPage
)

// PageLink is an absolute URL found on a list page, already resolved
// against the page it came from.
type PageLink struct {
	URL  string
	Kind LinkKind
}

// CrawlResult holds the collected rows and crawl accounting. Items are in
// discovery order: page by page, anchor by anchor.
type CrawlResult struct {
	Items        []*Item
	Pages        int
	Skipped      int
	SkippedURLs  []string
	ErrorsByType map[string]int
	StartTime    time.Time
	EndTime      time.Time
}

// Written is the number of rows that will reach the output file.
func (r *CrawlResult) Written() int {
	return len(r.Items)
}
