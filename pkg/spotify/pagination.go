package spotify

import (
	"context"
)

// Page is one bounded response from a paginated collection endpoint.
//
// Items carries the page's records in server-delivered order. Next, when
// non-empty, is the absolute URL of the following page; an empty Next marks
// the final page. A body that omits the item list decodes as zero items.
type Page[T any] struct {
	Href   string `json:"href"`
	Items  []T    `json:"items"`
	Limit  int    `json:"limit"`
	Next   string `json:"next"`
	Offset int    `json:"offset"`
	Total  int    `json:"total"`
}

// Pager walks a chain of pages lazily, issuing one request per page and
// following the server-supplied next pointer until it is absent.
//
// A Pager is finite and not restartable. It never constructs next-page URLs
// itself and performs no cycle detection: it trusts the server's pointers to
// be finite and non-cyclic. A failed page request ends the walk; there are
// no retries.
type Pager[T any] struct {
	client *Client
	next   string
}

// newPager creates a Pager whose first request targets the given locator,
// a path relative to the client's base URL.
func newPager[T any](c *Client, first string) *Pager[T] {
	return &Pager[T]{client: c, next: first}
}

// More reports whether another page is pending.
func (p *Pager[T]) More() bool {
	return p.next != ""
}

// Next fetches the pending page and advances to the locator it announces.
//
// After a failure the Pager is spent: More reports false and the fetch is
// not resumed. Calling Next once More reports false returns ErrNoMorePages.
func (p *Pager[T]) Next(ctx context.Context) (Page[T], error) {
	if p.next == "" {
		return Page[T]{}, ErrNoMorePages
	}

	var page Page[T]
	if err := p.client.getJSON(ctx, p.next, nil, &page); err != nil {
		p.next = ""
		return Page[T]{}, err
	}

	p.next = page.Next
	return page, nil
}

// CollectAll drains the pager and flattens every page into a single slice,
// preserving page order and within-page order. Duplicate items across pages
// are retained as-is.
//
// On failure CollectAll returns the items accumulated before the failing
// page together with the error; the caller decides whether the partial
// prefix is usable. A nil error means the collection is complete.
func CollectAll[T any](ctx context.Context, p *Pager[T]) ([]T, error) {
	var items []T
	for p.More() {
		page, err := p.Next(ctx)
		if err != nil {
			return items, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
