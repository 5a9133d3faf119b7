// Package crawl drives the page-by-page traversal of the catalogue.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aluiziolira/book-spider/config"
	"github.com/aluiziolira/book-spider/fetch"
	"github.com/aluiziolira/book-spider/models"
	"github.com/aluiziolira/book-spider/parse"
)

const seenCacheSize = 4096

// Driver walks listing pages from the seed URL and collects one Item per
// reachable detail page. Execution is single-threaded and sequential;
// CrawlResult is owned by the driver until Run returns it.
type Driver struct {
	cfg     *config.Config
	client  *fetch.Client
	seen    *lru.Cache[string, struct{}]
	Metrics *Metrics
}

// NewDriver builds a driver from cfg. A nil client gets a default one
// configured with cfg's user agent and timeout.
func NewDriver(cfg *config.Config, client *fetch.Client) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if client == nil {
		client = fetch.NewClient(cfg.UserAgent, cfg.Timeout)
	}
	seen, err := lru.New[string, struct{}](seenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create seen cache: %w", err)
	}
	return &Driver{
		cfg:     cfg,
		client:  client,
		seen:    seen,
		Metrics: NewMetrics(),
	}, nil
}

// Run crawls until no next-page link remains, the page cap is hit, or ctx
// is cancelled. A fetch or parse failure on the seed page is fatal; the
// same failure on a detail page is logged, counted, and skipped. A list
// page failing after the first stops pagination but keeps the rows
// collected so far.
//
// Termination assumes the site's pagination is acyclic; the seen cache
// suppresses revisits of detail pages but the driver does not detect
// next-link cycles.
func (d *Driver) Run(ctx context.Context) (*models.CrawlResult, error) {
	result := &models.CrawlResult{
		ErrorsByType: make(map[string]int),
		StartTime:    time.Now(),
	}

	pageURL := d.cfg.BaseURL
	for pageURL != "" {
		if err := ctx.Err(); err != nil {
			result.EndTime = time.Now()
			return result, err
		}

		details, next, err := d.listPage(ctx, pageURL)
		if err != nil {
			if result.Pages == 0 {
				return nil, fmt.Errorf("seed page: %w", err)
			}
			result.ErrorsByType[errorLabel(err)]++
			slog.Warn("list page failed, stopping pagination",
				slog.String("url", pageURL),
				slog.Any("error", err),
			)
			break
		}
		result.Pages++
		d.Metrics.IncPages()
		slog.Debug("list page parsed",
			slog.String("url", pageURL),
			slog.Int("links", len(details)),
			slog.Bool("has_next", next != nil),
		)

		for _, link := range details {
			if err := ctx.Err(); err != nil {
				result.EndTime = time.Now()
				return result, err
			}
			if _, dup := d.seen.Get(link.URL); dup {
				continue
			}
			d.seen.Add(link.URL, struct{}{})

			item, err := d.detailPage(ctx, link.URL)
			if err != nil {
				result.Skipped++
				result.SkippedURLs = append(result.SkippedURLs, link.URL)
				result.ErrorsByType[errorLabel(err)]++
				d.Metrics.IncSkipped(errorLabel(err))
				slog.Warn("detail page skipped",
					slog.String("url", link.URL),
					slog.Any("error", err),
				)
				continue
			}
			result.Items = append(result.Items, item)
			d.Metrics.IncItems()
		}

		if next == nil {
			break
		}
		if d.cfg.MaxPages > 0 && result.Pages >= d.cfg.MaxPages {
			slog.Debug("page cap reached", slog.Int("pages", result.Pages))
			break
		}
		pageURL = next.URL
	}

	result.EndTime = time.Now()
	return result, nil
}

func (d *Driver) listPage(ctx context.Context, pageURL string) ([]models.PageLink, *models.PageLink, error) {
	html, err := d.get(ctx, pageURL)
	if err != nil {
		return nil, nil, err
	}
	details, next, err := parse.List(html, pageURL)
	if err != nil {
		d.Metrics.IncError(errorLabel(err))
		return nil, nil, err
	}
	return details, next, nil
}

func (d *Driver) detailPage(ctx context.Context, url string) (*models.Item, error) {
	html, err := d.get(ctx, url)
	if err != nil {
		return nil, err
	}
	item, err := parse.Detail(html, url)
	if err != nil {
		d.Metrics.IncError(errorLabel(err))
		return nil, err
	}
	if err := item.Validate(); err != nil {
		invalid := &parse.ParseError{SourceURL: url, Field: "item", Err: err}
		d.Metrics.IncError(errorLabel(invalid))
		return nil, invalid
	}
	return item, nil
}

func (d *Driver) get(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := d.client.Fetch(ctx, url)
	d.Metrics.ObserveDuration(time.Since(start))
	if err != nil {
		d.Metrics.IncError(errorLabel(err))
		return "", err
	}
	return html, nil
}

// errorLabel buckets an error for the summary and metrics.
func errorLabel(err error) string {
	var fe *fetch.FetchError
	if errors.As(err, &fe) {
		if fe.StatusCode != 0 {
			return fmt.Sprintf("http_%d", fe.StatusCode)
		}
		return "network"
	}
	var pe *parse.ParseError
	if errors.As(err, &pe) {
		return "parse_" + pe.Field
	}
	return "other"
}
