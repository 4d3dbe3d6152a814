// ABOUTME: Channel domain model represents the feed-level metadata of one stream
// ABOUTME: Built once per request from upstream profile or topic information

package domain

import (
	"errors"
	"net/url"
)

// Channel is the feed-level metadata for one generated stream.
type Channel struct {
	// Title is the human-readable feed title
	Title string

	// Description is the feed description
	Description string

	// Link is the website URL the feed is about
	Link string
}

// Validate checks the channel has valid required fields.
func (c *Channel) Validate() error {
	if c.Title == "" {
		return errors.New("channel title cannot be empty")
	}

	if c.Link == "" {
		return errors.New("channel link cannot be empty")
	}

	if _, err := url.Parse(c.Link); err != nil {
		return errors.New("channel link is not valid format")
	}

	return nil
}
