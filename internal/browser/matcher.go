package browser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chromedp/cdproto/network"
)

// Response то, что видно предикату из сетевого ответа страницы
type Response struct {
	URL         string
	ContentType string
}

func responseFromCDP(r *network.Response) Response {
	resp := Response{URL: r.URL, ContentType: r.MimeType}

	for k, v := range r.Headers {
		if strings.EqualFold(k, "content-type") {
			resp.ContentType = fmt.Sprint(v)

			break
		}
	}

	return resp
}

// Rule все заданные условия должны выполниться.
// Пустое правило ничего не совпадает.
type Rule struct {
	// Подстроки, которые обязаны быть в URL
	Contains []string

	// Подстрока заголовка Content-Type
	ContentType string

	Pattern *regexp.Regexp
}

func (r Rule) Match(resp Response) bool {
	if len(r.Contains) == 0 && r.ContentType == "" && r.Pattern == nil {
		return false
	}

	for _, s := range r.Contains {
		if !strings.Contains(resp.URL, s) {
			return false
		}
	}

	if r.ContentType != "" && !strings.Contains(resp.ContentType, r.ContentType) {
		return false
	}

	if r.Pattern != nil && !r.Pattern.MatchString(resp.URL) {
		return false
	}

	return true
}

// Matcher срабатывает, если подошло хотя бы одно правило
type Matcher []Rule

func (m Matcher) Match(resp Response) bool {
	for _, r := range m {
		if r.Match(resp) {
			return true
		}
	}

	return false
}
