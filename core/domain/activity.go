// ABOUTME: Activity domain model represents one item from a Zhihu activity stream
// ABOUTME: Carries the kind discriminator plus the kind-specific fields the normalizer needs

package domain

// Kind discriminates the upstream content shapes.
type Kind string

const (
	KindAnswer     Kind = "answer"
	KindArticle    Kind = "article"
	KindQuestion   Kind = "question"
	KindRoundtable Kind = "roundtable"
	KindLive       Kind = "live"
	KindColumn     Kind = "column"
)

// Recognized reports whether the kind is one the normalizer knows how to handle,
// including the kinds it knowingly ignores.
func (k Kind) Recognized() bool {
	switch k {
	case KindAnswer, KindArticle, KindQuestion, KindRoundtable, KindLive, KindColumn:
		return true
	}
	return false
}

// Ignorable reports whether the kind is recognized but never rendered into a feed.
func (k Kind) Ignorable() bool {
	switch k {
	case KindRoundtable, KindLive, KindColumn:
		return true
	}
	return false
}

// QuestionRef is the question an answer belongs to.
type QuestionRef struct {
	ID    string
	Title string
}

// Activity is one decoded upstream content item. Unrecognized kinds are carried
// verbatim in Kind so callers can log them.
type Activity struct {
	// Kind is the upstream type discriminator
	Kind Kind

	// ID is the upstream identifier of the item itself
	ID string

	// Title is the item's own title (articles and questions; answers title via Question)
	Title string

	// Created is the creation timestamp in epoch seconds
	Created int64

	// Author is the author display name (empty for questions)
	Author string

	// Question is set for answers only
	Question *QuestionRef

	// Content is the full HTML body; HasContent records whether the upstream
	// response carried the content key at all (topic feeds omit it)
	Content    string
	HasContent bool

	// Excerpt is the short HTML summary
	Excerpt string

	// Thumbnail is the fallback image URL for text-free items
	Thumbnail string
}

// ActivityPage is one decoded page of an activity stream.
type ActivityPage struct {
	Items  []Activity
	Cursor PageCursor
}

// PageCursor points at the next page of upstream results.
type PageCursor struct {
	// Next is the absolute URL of the next page; followed verbatim
	Next string

	// IsEnd indicates the upstream has no further pages
	IsEnd bool
}
