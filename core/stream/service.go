// ABOUTME: Stream service orchestrates the fetch, aggregate, normalize, assemble pipeline
// ABOUTME: All state lives within one request; the service value is safe for concurrent use

package stream

import (
	"context"
	"strings"

	"zhihu-rss-api/core/domain"
	coreerrors "zhihu-rss-api/core/errors"
	"zhihu-rss-api/core/interfaces"
	"zhihu-rss-api/core/zhihu"
)

const (
	userChannelSuffix = " - 知乎动态"

	topicHotSuffix    = " - 知乎话题 - 热门排序 "
	topicNewestSuffix = " - 知乎话题 - 时间排序 "
)

// UserFeedOptions are the request options for a member stream.
type UserFeedOptions struct {
	// Digest renders excerpts instead of full bodies
	Digest bool

	// PicProxy is the image proxy mode (cf or google)
	PicProxy string
}

// Service turns Zhihu activity streams into RSS documents.
type Service struct {
	deps   interfaces.Dependencies
	client *zhihu.Client
	budget domain.Budget
}

// NewService creates a stream service. A zero budget falls back to the
// contract defaults.
func NewService(deps interfaces.Dependencies, client *zhihu.Client, budget domain.Budget) *Service {
	if budget.MinItems == 0 && budget.MaxPages == 0 {
		budget = domain.DefaultBudget()
	}
	return &Service{
		deps:   deps,
		client: client,
		budget: budget,
	}
}

// UserFeed builds the RSS document for one member's activity stream.
func (s *Service) UserFeed(ctx context.Context, userID string, opts UserFeedOptions) (string, error) {
	card, err := s.client.ProfileCard(ctx, userID)
	if err != nil {
		return "", err
	}

	channel := domain.Channel{
		Title:       card.Name + userChannelSuffix,
		Description: card.Headline,
		Link:        card.URL,
	}

	items, err := Collect(ctx,
		func(ctx context.Context) (domain.ActivityPage, error) {
			return s.client.UserActivities(ctx, userID)
		},
		s.client.NextPage,
		AcceptUserStream,
		s.budget,
	)
	if err != nil {
		return "", coreerrors.WrapError(err, "collecting member activities")
	}

	entries := s.normalizeAll(items, Options{
		Digest:   opts.Digest,
		PicProxy: opts.PicProxy,
	})

	return BuildRSS(channel, entries)
}

// TopicFeed builds the RSS document for one topic feed.
func (s *Service) TopicFeed(ctx context.Context, topicID string, sort zhihu.Sort, picProxy string) (string, error) {
	info, err := s.client.TopicInfo(ctx, topicID)
	if err != nil {
		return "", err
	}

	suffix := topicHotSuffix
	if sort == zhihu.SortNewest {
		suffix = topicNewestSuffix
	}

	channel := domain.Channel{
		Title:       info.Name + suffix,
		Description: info.Description,
		Link:        info.URL,
	}

	items, err := Collect(ctx,
		func(ctx context.Context) (domain.ActivityPage, error) {
			return s.client.TopicActivities(ctx, topicID, sort)
		},
		// topic feeds sometimes emit insecure next-page links
		func(ctx context.Context, cursor domain.PageCursor) (domain.ActivityPage, error) {
			cursor.Next = secureURL(cursor.Next)
			return s.client.NextPage(ctx, cursor)
		},
		AcceptAll,
		s.budget,
	)
	if err != nil {
		return "", coreerrors.WrapError(err, "collecting topic activities")
	}

	entries := s.normalizeAll(items, Options{
		PicProxy:   picProxy,
		ExtraKinds: []domain.Kind{domain.KindQuestion},
	})

	return BuildRSS(channel, entries)
}

// normalizeAll maps activities to entries, skipping what cannot be rendered.
// Unknown kinds and malformed items are logged and skipped, never fatal.
func (s *Service) normalizeAll(items []domain.Activity, opts Options) []domain.Entry {
	entries := make([]domain.Entry, 0, len(items))

	for _, item := range items {
		entry, err := ItemToEntry(item, opts)
		switch {
		case err == nil && entry != nil:
			entries = append(entries, *entry)
		case coreerrors.IsUnknownKind(err):
			s.logWarn("skipping activity of unknown kind", map[string]interface{}{
				"kind": string(item.Kind),
			})
		case coreerrors.IsMalformedItem(err):
			s.logWarn("skipping malformed activity", map[string]interface{}{
				"kind":  string(item.Kind),
				"error": err.Error(),
			})
		}
	}

	return entries
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func secureURL(rawurl string) string {
	if strings.HasPrefix(rawurl, "http://") {
		return "https://" + strings.TrimPrefix(rawurl, "http://")
	}
	return rawurl
}
