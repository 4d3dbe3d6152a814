// ABOUTME: Content sanitizer rewrites raw upstream HTML fragments into feed-safe markup
// ABOUTME: Handles block-level code rendering, lazy-image cleanup and image proxy rewriting

package sanitize

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// zhihuImgPattern matches the upstream's own image hosts (pic1.zhimg.com,
// picx.zhimg.com and friends). Rewritten URLs no longer match, which makes
// the proxy rewrite idempotent.
var zhihuImgPattern = regexp.MustCompile(`^https?://pic\w\.zhimg\.com/`)

// picProxies maps the supported proxy modes to their URL prefixes. Anything
// else is a no-op passthrough.
var picProxies = map[string]string{
	"cf":     "https://images.weserv.nl/?url=",
	"google": "https://images1-focus-opensocial.googleusercontent.com/gadgets/proxy?container=focus&refresh=2592000&url=",
}

// Fragment parses an HTML fragment, rewrites code blocks for block-level
// rendering, tidies lazy-loaded images and optionally routes upstream-hosted
// images through the chosen proxy. Returns the serialized fragment.
func Fragment(fragment string, proxy string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	blockifyCode(doc)
	tidy(doc)
	proxifyImages(doc, proxy)

	return doc.Find("body").Html()
}

// blockifyCode wraps every code element not already inside a pre so feed
// readers render it as a block instead of mid-sentence inline text.
func blockifyCode(doc *goquery.Document) {
	doc.Find("code").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("pre").Length() == 0 {
			s.WrapHtml("<pre></pre>")
		}
	})
}

// tidy removes the upstream's lazy-loading artifacts: the real image URL is
// carried in data-actualsrc or data-original while src holds a placeholder,
// with a duplicate copy inside a noscript element.
func tidy(doc *goquery.Document) {
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if actual, ok := s.Attr("data-actualsrc"); ok && actual != "" {
			s.SetAttr("src", actual)
			s.RemoveAttr("data-actualsrc")
		} else if original, ok := s.Attr("data-original"); ok && original != "" {
			s.SetAttr("src", original)
			s.RemoveAttr("data-original")
		}
	})

	doc.Find("noscript").Remove()
}

// proxifyImages rewrites every upstream-hosted image URL through the chosen
// proxy. Unrecognized proxy values leave the document untouched.
func proxifyImages(doc *goquery.Document, proxy string) {
	prefix, ok := picProxies[proxy]
	if !ok {
		return
	}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || !zhihuImgPattern.MatchString(src) {
			return
		}
		s.SetAttr("src", prefix+url.QueryEscape(src))
	})
}
