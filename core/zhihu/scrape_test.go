package zhihu

import (
	"context"
	"strings"
	"testing"

	coreerrors "zhihu-rss-api/core/errors"
	"zhihu-rss-api/core/interfaces"
)

func htmlClient(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, rawurl string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{body: body}, nil
		},
	}
}

const profileCardHTML = `
<div class="zm-profile-card">
  <a class="avatar-link" href="/people/farseerfc"><img></a>
  <span class="name">法师</span>
  <div class="tagline">一句话介绍</div>
</div>`

func TestProfileCard_ParsesNameHeadlineURL(t *testing.T) {
	card, err := newTestClient(htmlClient(profileCardHTML)).ProfileCard(context.Background(), "farseerfc")
	if err != nil {
		t.Fatalf("ProfileCard returned error: %v", err)
	}

	if card.Name != "法师" {
		t.Errorf("Name = %q, want 法师", card.Name)
	}
	if card.Headline != "一句话介绍" {
		t.Errorf("Headline = %q, want 一句话介绍", card.Headline)
	}
	if card.URL != "https://www.zhihu.com/people/farseerfc" {
		t.Errorf("URL = %q, want resolved profile URL", card.URL)
	}
}

func TestProfileCard_MissingTaglineIsEmpty(t *testing.T) {
	body := `<div><a class="avatar-link" href="/people/x"></a><span class="name">某人</span></div>`

	card, err := newTestClient(htmlClient(body)).ProfileCard(context.Background(), "x")
	if err != nil {
		t.Fatalf("ProfileCard returned error: %v", err)
	}

	if card.Headline != "" {
		t.Errorf("Headline = %q, want empty string", card.Headline)
	}
}

func TestProfileCard_EmptyBodyIsNotFound(t *testing.T) {
	_, err := newTestClient(htmlClient("")).ProfileCard(context.Background(), "bei-feng-san-dai")

	if !coreerrors.IsNotFound(err) {
		t.Errorf("expected NotFoundError for empty body, got %v", err)
	}
}

func TestProfileCard_SendsOnlyUserAgent(t *testing.T) {
	var gotHeaders map[string]string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, rawurl string, headers map[string]string) (interfaces.Response, error) {
			gotHeaders = headers
			return &mockResponse{body: profileCardHTML}, nil
		},
	}

	_, err := newTestClient(client).ProfileCard(context.Background(), "farseerfc")
	if err != nil {
		t.Fatalf("ProfileCard returned error: %v", err)
	}

	if gotHeaders["User-Agent"] == "" {
		t.Error("User-Agent header should be set")
	}
	if gotHeaders["Authorization"] != "" {
		t.Error("Authorization header must not be sent to HTML endpoints")
	}
}

func TestProfileCard_RequestEncodesURLToken(t *testing.T) {
	var gotURL string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, rawurl string, headers map[string]string) (interfaces.Response, error) {
			gotURL = rawurl
			return &mockResponse{body: profileCardHTML}, nil
		},
	}

	_, err := newTestClient(client).ProfileCard(context.Background(), "farseerfc")
	if err != nil {
		t.Fatalf("ProfileCard returned error: %v", err)
	}

	if !strings.HasPrefix(gotURL, "https://www.zhihu.com/node/MemberProfileCardV2?params=") {
		t.Errorf("card URL = %q, want MemberProfileCardV2 endpoint", gotURL)
	}
	if !strings.Contains(gotURL, "url_token") {
		t.Errorf("card URL = %q, want url_token in params", gotURL)
	}
}

func TestTopicInfo_MetaCardLayout(t *testing.T) {
	body := `
	<div class="TopicMetaCard">
	  <div class="TopicMetaCard-title">Linux</div>
	  <div class="TopicMetaCard-description is-collapsed">一个操作系统内核</div>
	</div>`

	info, err := newTestClient(htmlClient(body)).TopicInfo(context.Background(), "19554298")
	if err != nil {
		t.Fatalf("TopicInfo returned error: %v", err)
	}

	if info.Name != "Linux" {
		t.Errorf("Name = %q, want Linux", info.Name)
	}
	if info.Description != "一个操作系统内核" {
		t.Errorf("Description = %q, want 一个操作系统内核", info.Description)
	}
	if info.URL != "https://www.zhihu.com/topic/19554298" {
		t.Errorf("URL = %q, want topic page URL", info.URL)
	}
}

func TestTopicInfo_CardLayout(t *testing.T) {
	body := `
	<div class="TopicCard">
	  <h1 class="TopicCard-titleText">人工智能</h1>
	  <div class="TopicCard-ztext">话题描述文本</div>
	</div>`

	info, err := newTestClient(htmlClient(body)).TopicInfo(context.Background(), "19551275")
	if err != nil {
		t.Fatalf("TopicInfo returned error: %v", err)
	}

	if info.Name != "人工智能" {
		t.Errorf("Name = %q, want 人工智能", info.Name)
	}
	if info.Description != "话题描述文本" {
		t.Errorf("Description = %q, want 话题描述文本", info.Description)
	}
}

func TestTopicInfo_UnknownLayoutFallsBack(t *testing.T) {
	body := `<div class="SomethingElse">whatever</div>`

	info, err := newTestClient(htmlClient(body)).TopicInfo(context.Background(), "19551894")
	if err != nil {
		t.Fatalf("TopicInfo should not fail on unknown layout: %v", err)
	}

	if info.Name != "19551894" {
		t.Errorf("Name = %q, want topic id fallback", info.Name)
	}
	if info.Description != "未找到话题描述" {
		t.Errorf("Description = %q, want fallback text", info.Description)
	}
}

func TestTopicInfo_EmptyBodyIsNotFound(t *testing.T) {
	_, err := newTestClient(htmlClient("  ")).TopicInfo(context.Background(), "19551894")

	if !coreerrors.IsNotFound(err) {
		t.Errorf("expected NotFoundError for empty body, got %v", err)
	}
}

func TestProfileCard_ErrorStatusIsTransportError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, rawurl string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 500, body: "<html>server error</html>"}, nil
		},
	}

	_, err := newTestClient(client).ProfileCard(context.Background(), "farseerfc")
	if !coreerrors.IsTransport(err) {
		t.Errorf("expected transport error for 500 response, got %v", err)
	}
}
