// ABOUTME: Pagination aggregator walks an activity stream until enough items are accepted
// ABOUTME: The walk is a bounded loop; overshoot and undershoot are upstream-faithful behavior

package stream

import (
	"context"

	"zhihu-rss-api/core/domain"
)

// FetchFirst fetches the first page of a stream.
type FetchFirst func(ctx context.Context) (domain.ActivityPage, error)

// FetchNext fetches the page behind a cursor.
type FetchNext func(ctx context.Context, cursor domain.PageCursor) (domain.ActivityPage, error)

// AcceptFunc decides whether an activity is kept during the walk.
type AcceptFunc func(domain.Activity) bool

// AcceptUserStream keeps only answers and articles; user streams exclude
// question previews.
func AcceptUserStream(a domain.Activity) bool {
	return a.Kind == domain.KindAnswer || a.Kind == domain.KindArticle
}

// AcceptAll keeps everything; topic streams include questions by design.
func AcceptAll(domain.Activity) bool {
	return true
}

// Collect walks the stream page by page, filtering by accept, until the
// accepted count reaches budget.MinItems, the upstream is exhausted, or
// budget.MaxPages pages beyond the first have been fetched. A whole page is
// appended at a time, so the result may exceed MinItems; that matches the
// upstream contract and is not capped.
func Collect(ctx context.Context, first FetchFirst, next FetchNext, accept AcceptFunc, budget domain.Budget) ([]domain.Activity, error) {
	page, err := first(ctx)
	if err != nil {
		return nil, err
	}

	items := filterActivities(page.Items, accept)
	cursor := page.Cursor

	for extra := 0; len(items) < budget.MinItems && extra < budget.MaxPages && !cursor.IsEnd; extra++ {
		page, err = next(ctx, cursor)
		if err != nil {
			return nil, err
		}

		items = append(items, filterActivities(page.Items, accept)...)
		cursor = page.Cursor
	}

	return items, nil
}

func filterActivities(items []domain.Activity, accept AcceptFunc) []domain.Activity {
	kept := make([]domain.Activity, 0, len(items))
	for _, item := range items {
		if accept(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
