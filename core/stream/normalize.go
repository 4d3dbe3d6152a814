// ABOUTME: Item normalizer maps one upstream activity to a normalized feed entry
// ABOUTME: Pure kind dispatch; ignorable kinds skip, unknown kinds surface a typed error

package stream

import (
	"fmt"
	"strings"
	"time"

	"zhihu-rss-api/core/domain"
	coreerrors "zhihu-rss-api/core/errors"
	"zhihu-rss-api/core/sanitize"
)

const (
	answerTitlePrefix   = "[回答] "
	articleTitlePrefix  = "[文章] "
	questionTitlePrefix = "[问题] "
)

// Options control how an activity is normalized.
type Options struct {
	// Digest trades the full content body for the excerpt
	Digest bool

	// PicProxy routes upstream-hosted images through a proxy (cf or google);
	// unrecognized values pass through unchanged
	PicProxy string

	// ExtraKinds lists kinds beyond answer/article that should be rendered
	// (topic streams add question)
	ExtraKinds []domain.Kind
}

func (o Options) allowsExtra(k domain.Kind) bool {
	for _, extra := range o.ExtraKinds {
		if extra == k {
			return true
		}
	}
	return false
}

// ItemToEntry maps one activity to a normalized feed entry. A nil entry with a
// nil error means the kind is recognized but never rendered. Unknown kinds and
// items missing required fields return typed errors; callers skip those items
// and continue rather than aborting the feed.
func ItemToEntry(a domain.Activity, opts Options) (*domain.Entry, error) {
	var title, link, author string
	var body string

	switch {
	case a.Kind == domain.KindAnswer:
		if a.ID == "" || a.Question == nil || a.Question.ID == "" {
			return nil, &coreerrors.MalformedItemError{Kind: string(a.Kind), Reason: "missing answer or question id"}
		}
		title = answerTitlePrefix + a.Question.Title
		link = fmt.Sprintf("https://www.zhihu.com/question/%s/answer/%s", a.Question.ID, a.ID)
		author = a.Author

	case a.Kind == domain.KindArticle:
		if a.ID == "" {
			return nil, &coreerrors.MalformedItemError{Kind: string(a.Kind), Reason: "missing article id"}
		}
		title = articleTitlePrefix + a.Title
		link = fmt.Sprintf("https://zhuanlan.zhihu.com/p/%s", a.ID)
		author = a.Author

	case a.Kind == domain.KindQuestion && opts.allowsExtra(domain.KindQuestion):
		if a.ID == "" {
			return nil, &coreerrors.MalformedItemError{Kind: string(a.Kind), Reason: "missing question id"}
		}
		title = questionTitlePrefix + a.Title
		link = fmt.Sprintf("https://www.zhihu.com/question/%s", a.ID)

	case a.Kind.Ignorable():
		return nil, nil

	default:
		// includes question outside ExtraKinds: not renderable in this
		// stream, so it is reported like any other unrendered kind
		return nil, &coreerrors.UnknownKindError{Kind: string(a.Kind)}
	}

	body = bodyContent(a, opts.Digest)

	// a text-free post still renders its picture
	if body == "" {
		body = fmt.Sprintf(`<img src="%s">`, a.Thumbnail)
	}

	body, err := sanitize.Fragment(body, opts.PicProxy)
	if err != nil {
		return nil, &coreerrors.MalformedItemError{Kind: string(a.Kind), Reason: "unparsable content"}
	}

	return &domain.Entry{
		Title:     stripBackspace(title),
		Link:      link,
		GUID:      link,
		Author:    author,
		Published: time.Unix(a.Created, 0).UTC(),
		Body:      stripBackspace(body),
	}, nil
}

// bodyContent selects the raw body by priority: question titles have no
// content payload worth rendering, digest mode prefers the excerpt, and topic
// feed items omit the content key entirely.
func bodyContent(a domain.Activity, digest bool) string {
	switch {
	case a.Kind == domain.KindQuestion:
		return a.Title
	case digest:
		return a.Excerpt
	case !a.HasContent:
		return a.Excerpt
	default:
		return a.Content
	}
}

// stripBackspace removes stray 0x08 bytes the upstream occasionally embeds;
// they corrupt rendering in several feed readers.
func stripBackspace(s string) string {
	return strings.ReplaceAll(s, "\x08", "")
}
