// ABOUTME: Feed assembler maps channel metadata and normalized entries onto RSS 2.0
// ABOUTME: Entry order is preserved exactly as delivered by the aggregator

package stream

import (
	"time"

	"github.com/gorilla/feeds"

	"zhihu-rss-api/core/domain"
)

// BuildRSS serializes a channel and its entries into an RSS 2.0 document.
// The channel must validate; entries missing required fields are dropped.
// Entries are emitted in the given order; there is no re-sort by timestamp.
func BuildRSS(channel domain.Channel, entries []domain.Entry) (string, error) {
	if err := channel.Validate(); err != nil {
		return "", err
	}

	feed := &feeds.Feed{
		Title:       channel.Title,
		Link:        &feeds.Link{Href: channel.Link},
		Description: channel.Description,
		Created:     time.Now().UTC(),
	}

	feed.Items = make([]*feeds.Item, 0, len(entries))
	for _, entry := range entries {
		// an entry without title or link cannot be represented in RSS
		if !entry.IsValid() {
			continue
		}
		item := &feeds.Item{
			Title:       entry.Title,
			Link:        &feeds.Link{Href: entry.Link},
			Description: entry.Body,
			Id:          entry.GUID,
			IsPermaLink: "true",
			Created:     entry.Published,
		}
		if entry.Author != "" {
			item.Author = &feeds.Author{Name: entry.Author}
		}
		feed.Items = append(feed.Items, item)
	}

	return feed.ToRss()
}
