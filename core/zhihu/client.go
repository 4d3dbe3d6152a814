// ABOUTME: Zhihu upstream client handles the v4 JSON API and activity page decoding
// ABOUTME: Reproduces the fixed credential headers the upstream requires for acceptance

package zhihu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"zhihu-rss-api/core/domain"
	coreerrors "zhihu-rss-api/core/errors"
	"zhihu-rss-api/core/interfaces"
)

const (
	apiBase    = "https://www.zhihu.com/api/v4/"
	siteOrigin = "https://www.zhihu.com/"

	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:63.0) Gecko/20100101 Firefox/63.0"

	// hard-coded in upstream's own web client
	authorization = "oauth c3cef7c66a1843f8b3a9e6a1e3160e20"
	apiVersion    = "3.0.40"
	udid          = "AMAiMrPqqQ2PTnOxAr5M71LCh-dIQ8kkYvw="

	pageLimit = "7"
)

// Sort selects the ordering of a topic feed.
type Sort string

const (
	SortHot    Sort = "hot"
	SortNewest Sort = "newest"
)

// Client issues authenticated requests against the Zhihu API and HTML pages.
// It holds only read-only constants and injected dependencies, so a single
// value is safe for concurrent use across requests.
type Client struct {
	deps interfaces.Dependencies
	now  func() time.Time
}

// NewClient creates a new upstream client.
func NewClient(deps interfaces.Dependencies) *Client {
	return &Client{
		deps: deps,
		now:  time.Now,
	}
}

// apiHeaders returns the fixed headers every API request carries.
func apiHeaders() map[string]string {
	return map[string]string{
		"User-Agent":    userAgent,
		"Authorization": authorization,
		"x-api-version": apiVersion,
		"x-udid":        udid,
	}
}

// FetchJSON resolves rawurl against the API base, issues an authenticated GET
// and decodes the body as UTF-8 JSON into out.
func (c *Client) FetchJSON(ctx context.Context, rawurl string, out interface{}) error {
	base, err := url.Parse(apiBase)
	if err != nil {
		return err
	}

	ref, err := url.Parse(rawurl)
	if err != nil {
		return &coreerrors.DecodeError{URL: rawurl, Err: err}
	}
	target := base.ResolveReference(ref).String()

	resp, err := c.deps.HTTPClient.Get(ctx, target, apiHeaders())
	if err != nil {
		return &coreerrors.TransportError{URL: target, Err: err}
	}
	defer resp.Body().Close()

	// Check status code
	if resp.StatusCode() != 200 {
		return &coreerrors.TransportError{
			URL: target,
			Err: fmt.Errorf("upstream returned status %d", resp.StatusCode()),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return &coreerrors.TransportError{URL: target, Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &coreerrors.DecodeError{URL: target, Err: err}
	}

	return nil
}

// UserActivities fetches the most recent page of a member's activity stream.
func (c *Client) UserActivities(ctx context.Context, userID string) (domain.ActivityPage, error) {
	query := url.Values{
		"desktop":  {"True"},
		"after_id": {strconv.FormatInt(c.now().Unix(), 10)},
		"limit":    {pageLimit},
	}
	rawurl := "members/" + url.PathEscape(userID) + "/activities?" + query.Encode()
	return c.fetchPage(ctx, rawurl)
}

// TopicActivities fetches the most recent page of a topic feed, ordered by
// popularity (hot) or recency (newest).
func (c *Client) TopicActivities(ctx context.Context, topicID string, sort Sort) (domain.ActivityPage, error) {
	var path string
	switch sort {
	case SortNewest:
		path = "topics/" + url.PathEscape(topicID) + "/feeds/timeline_activity"
	default:
		path = "topics/" + url.PathEscape(topicID) + "/feeds/top_activity"
	}

	query := url.Values{
		"desktop":  {"True"},
		"after_id": {strconv.FormatInt(c.now().Unix(), 10)},
		"limit":    {pageLimit},
	}
	return c.fetchPage(ctx, path+"?"+query.Encode())
}

// NextPage follows the cursor's next URL verbatim.
func (c *Client) NextPage(ctx context.Context, cursor domain.PageCursor) (domain.ActivityPage, error) {
	return c.fetchPage(ctx, cursor.Next)
}

func (c *Client) fetchPage(ctx context.Context, rawurl string) (domain.ActivityPage, error) {
	var envelope pageEnvelope
	if err := c.FetchJSON(ctx, rawurl, &envelope); err != nil {
		return domain.ActivityPage{}, err
	}
	return c.decodePage(envelope), nil
}

// pageEnvelope is the wire shape of one activity stream page.
type pageEnvelope struct {
	Data   []streamItem `json:"data"`
	Paging struct {
		IsEnd bool   `json:"is_end"`
		Next  string `json:"next"`
	} `json:"paging"`
}

// streamItem wraps one activity; the payload sits under target.
type streamItem struct {
	Verb   string          `json:"verb"`
	Target json.RawMessage `json:"target"`
}

// target is the union of fields across all known item kinds. Pointer fields
// record presence: topic feeds omit the content key entirely.
type target struct {
	Type        string      `json:"type"`
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	CreatedTime int64       `json:"created_time"`
	Created     int64       `json:"created"`
	Author      *struct {
		Name string `json:"name"`
	} `json:"author"`
	Question *struct {
		ID    json.Number `json:"id"`
		Title string      `json:"title"`
	} `json:"question"`
	Content   *string `json:"content"`
	Excerpt   string  `json:"excerpt"`
	Thumbnail string  `json:"thumbnail"`
}

// decodePage converts a wire envelope into domain activities. Individual items
// that fail to decode are logged and dropped; they never abort the page.
func (c *Client) decodePage(envelope pageEnvelope) domain.ActivityPage {
	page := domain.ActivityPage{
		Items: make([]domain.Activity, 0, len(envelope.Data)),
		Cursor: domain.PageCursor{
			Next:  envelope.Paging.Next,
			IsEnd: envelope.Paging.IsEnd,
		},
	}

	for _, item := range envelope.Data {
		var t target
		if err := json.Unmarshal(item.Target, &t); err != nil {
			if c.deps.Logger != nil {
				c.deps.Logger.Warn("dropping undecodable activity target", map[string]interface{}{
					"error": err.Error(),
				})
			}
			continue
		}
		page.Items = append(page.Items, targetToActivity(t))
	}

	return page
}

func targetToActivity(t target) domain.Activity {
	activity := domain.Activity{
		Kind:      domain.Kind(t.Type),
		ID:        t.ID.String(),
		Title:     t.Title,
		Excerpt:   t.Excerpt,
		Thumbnail: t.Thumbnail,
	}

	// answers timestamp under created_time, everything else under created
	if activity.Kind == domain.KindAnswer {
		activity.Created = t.CreatedTime
	} else {
		activity.Created = t.Created
	}

	if t.Author != nil {
		activity.Author = t.Author.Name
	}

	if t.Question != nil {
		activity.Question = &domain.QuestionRef{
			ID:    t.Question.ID.String(),
			Title: t.Question.Title,
		}
	}

	if t.Content != nil {
		activity.Content = *t.Content
		activity.HasContent = true
	}

	return activity
}
