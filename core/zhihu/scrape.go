// ABOUTME: HTML scrape endpoints of the upstream client (profile card, topic page)
// ABOUTME: Upstream returns empty bodies for some deactivated accounts; that is a 404 here

package zhihu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	coreerrors "zhihu-rss-api/core/errors"
)

const (
	profileCardURL = "https://www.zhihu.com/node/MemberProfileCardV2"
	topicPageBase  = "https://www.zhihu.com/topic/"

	// shown when neither known topic page layout is present
	topicDescriptionFallback = "未找到话题描述"
)

// ProfileCard is a member's profile summary.
type ProfileCard struct {
	Name     string
	Headline string
	URL      string
}

// TopicInfo is a topic's summary.
type TopicInfo struct {
	Name        string
	Description string
	URL         string
}

// ProfileCard fetches and parses a member's profile card page.
// An empty response body means the account is gone or deactivated; callers
// must surface that as not-found, not retry it.
func (c *Client) ProfileCard(ctx context.Context, userID string) (ProfileCard, error) {
	params, err := json.Marshal(map[string]string{"url_token": userID})
	if err != nil {
		return ProfileCard{}, err
	}
	cardURL := profileCardURL + "?params=" + url.QueryEscape(string(params))

	body, err := c.fetchHTML(ctx, cardURL)
	if err != nil {
		return ProfileCard{}, err
	}

	if len(strings.TrimSpace(body)) == 0 {
		return ProfileCard{}, &coreerrors.NotFoundError{Resource: "member", ID: userID}
	}

	return parseProfileCard(body, userID)
}

func parseProfileCard(body, userID string) (ProfileCard, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ProfileCard{}, &coreerrors.DecodeError{URL: profileCardURL, Err: err}
	}

	card := ProfileCard{
		Name:     strings.TrimSpace(doc.Find("span.name").First().Text()),
		Headline: strings.TrimSpace(doc.Find("div.tagline").First().Text()),
	}

	href, _ := doc.Find("a.avatar-link").First().Attr("href")
	card.URL = resolveAgainstSite(href)

	if card.Name == "" {
		return ProfileCard{}, &coreerrors.NotFoundError{Resource: "member", ID: userID}
	}

	return card, nil
}

// TopicInfo fetches and parses a topic page. Two page layouts are recognized;
// unknown layouts degrade to the topic id plus a fallback description instead
// of failing, because the upstream markup drifts without notice.
func (c *Client) TopicInfo(ctx context.Context, topicID string) (TopicInfo, error) {
	topicURL := topicPageBase + url.PathEscape(topicID)

	body, err := c.fetchHTML(ctx, topicURL)
	if err != nil {
		return TopicInfo{}, err
	}

	if len(strings.TrimSpace(body)) == 0 {
		return TopicInfo{}, &coreerrors.NotFoundError{Resource: "topic", ID: topicID}
	}

	return parseTopicPage(body, topicID, topicURL)
}

// parseTopicPage is the single place that knows the competing topic page
// layouts; markup drift should only ever touch this function.
func parseTopicPage(body, topicID, topicURL string) (TopicInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return TopicInfo{}, &coreerrors.DecodeError{URL: topicURL, Err: err}
	}

	info := TopicInfo{URL: topicURL}

	switch {
	case doc.Find("[class*='TopicMetaCard']").Length() > 0:
		info.Name = strings.TrimSpace(doc.Find("div.TopicMetaCard-title").First().Text())
		info.Description = strings.TrimSpace(doc.Find("div[class*='TopicMetaCard-description']").First().Text())
	case doc.Find("[class*='TopicCard']").Length() > 0:
		info.Name = strings.TrimSpace(doc.Find("h1.TopicCard-titleText").First().Text())
		info.Description = strings.TrimSpace(doc.Find("div.TopicCard-ztext").First().Text())
	default:
		info.Name = topicID
		info.Description = topicDescriptionFallback
	}

	return info, nil
}

// fetchHTML issues a GET with only the browser User-Agent set, as the HTML
// endpoints reject the API credential headers.
func (c *Client) fetchHTML(ctx context.Context, rawurl string) (string, error) {
	resp, err := c.deps.HTTPClient.Get(ctx, rawurl, map[string]string{
		"User-Agent": userAgent,
	})
	if err != nil {
		return "", &coreerrors.TransportError{URL: rawurl, Err: err}
	}
	defer resp.Body().Close()

	// Check status code
	if resp.StatusCode() != 200 {
		return "", &coreerrors.TransportError{
			URL: rawurl,
			Err: fmt.Errorf("upstream returned status %d", resp.StatusCode()),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &coreerrors.TransportError{URL: rawurl, Err: err}
	}

	return string(body), nil
}

func resolveAgainstSite(href string) string {
	base, err := url.Parse(siteOrigin)
	if err != nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}
