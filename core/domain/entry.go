// ABOUTME: Entry domain model is the normalized, kind-independent feed item
// ABOUTME: Produced by the stream normalizer and consumed by the RSS assembler

package domain

import "time"

// Entry is one normalized feed item, ready for serialization.
type Entry struct {
	// Title is the prefixed item headline
	Title string

	// Link is the canonical URL of the item
	Link string

	// GUID is the stable unique id; always equal to Link (upstream has no
	// separate id suitable for syndication)
	GUID string

	// Author is the creator display name; empty for questions
	Author string

	// Published is the creation time in UTC
	Published time.Time

	// Body is the sanitized HTML content
	Body string
}

// IsValid checks the entry has all required fields.
func (e *Entry) IsValid() bool {
	if e.Title == "" {
		return false
	}

	if e.Link == "" {
		return false
	}

	return true
}

// Budget bounds the pagination walk.
type Budget struct {
	// MinItems is the accepted-item count the walk tries to reach
	MinItems int

	// MaxPages is the number of pages fetched after the first one
	MaxPages int
}

// DefaultBudget returns the contract values for the pagination walk.
func DefaultBudget() Budget {
	return Budget{MinItems: 20, MaxPages: 3}
}
