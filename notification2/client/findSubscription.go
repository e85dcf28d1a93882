package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/plgd-dev/notification2/notification2/uri"
	"github.com/tidwall/gjson"
)

type searchOptions struct {
	PageSize       int    `url:"pageSize"`
	WithTotalPages bool   `url:"withTotalPages"`
	CurrentPage    int    `url:"currentPage"`
	Subscription   string `url:"subscription,omitempty"`
}

type foundSubscription struct {
	ID  string
	Raw string
}

type subscriptionsPage struct {
	found      foundSubscription
	ok         bool
	totalPages int64
}

func parseSubscriptionsPage(name string, body []byte) (subscriptionsPage, error) {
	if !gjson.ValidBytes(body) {
		return subscriptionsPage{}, fmt.Errorf("invalid json")
	}
	doc := gjson.ParseBytes(body)
	var page subscriptionsPage
	doc.Get("subscriptions").ForEach(func(_, s gjson.Result) bool {
		if s.Get("subscription").String() != name {
			return true
		}
		page.found = foundSubscription{
			ID:  s.Get("id").String(),
			Raw: s.Raw,
		}
		page.ok = true
		return false
	})
	page.totalPages = 1
	if v := doc.Get("statistics.totalPages"); v.Exists() {
		page.totalPages = v.Int()
	}
	return page, nil
}

// findSubscription scans the subscriptions page by page for the exact name. At most MaxPages pages are requested.
func (m *Manager) findSubscription(ctx context.Context, name string) (foundSubscription, bool, error) {
	opts := searchOptions{
		PageSize:       m.cfg.Subscription.PageSize,
		WithTotalPages: true,
	}
	if m.cfg.Subscription.UseNameFilter {
		opts.Subscription = name
	}
	for currentPage := 1; currentPage <= m.cfg.Subscription.MaxPages; currentPage++ {
		opts.CurrentPage = currentPage
		q, err := query.Values(opts)
		if err != nil {
			return foundSubscription{}, false, fmt.Errorf("cannot encode query: %w", err)
		}
		m.logger.Debugf("searching for subscription '%v' in page %v", name, currentPage)
		status, body, err := m.do(ctx, request{
			op:     "search subscriptions",
			method: http.MethodGet,
			href:   uri.Subscriptions,
			query:  q,
		})
		if err != nil {
			return foundSubscription{}, false, err
		}
		if status != http.StatusOK {
			m.logger.Debugf("search for subscription '%v' in page %v returned unexpected status %v", name, currentPage, status)
			return foundSubscription{}, false, withKind(ErrProtocolUnavailable, &StatusError{Op: "search subscriptions", StatusCode: status, Body: body})
		}
		page, err := parseSubscriptionsPage(name, body)
		if err != nil {
			return foundSubscription{}, false, fmt.Errorf("cannot decode subscriptions page %v: %w", currentPage, err)
		}
		if page.ok {
			if page.found.ID == "" {
				return foundSubscription{}, false, fmt.Errorf("subscription '%v' in page %v has no id: %v", name, currentPage, page.found.Raw)
			}
			m.logger.Debugf("found subscription '%v' in page %v", name, currentPage)
			return page.found, true, nil
		}
		if int64(currentPage) >= page.totalPages {
			return foundSubscription{}, false, nil
		}
	}
	return foundSubscription{}, false, fmt.Errorf("%w: searched %v pages", ErrPageLimitReached, m.cfg.Subscription.MaxPages)
}
