package downloaders

import (
	"regexp"

	"github.com/StounhandJ/video_download/internal/platform"
)

type Link struct {
	Platform platform.ID
	URL      string
}

type rule struct {
	platform platform.ID
	re       *regexp.Regexp

	// Собирает канонический URL из подгрупп, при nil возвращается совпадение целиком
	canonical func(groups []string) string
}

// Порядок важен: первое совпадение побеждает
var rules = []rule{
	{platform: platform.Douyin, re: regexp.MustCompile(`https?://v\.douyin\.com/[A-Za-z0-9_\-/]+`)},
	{platform: platform.Douyin, re: regexp.MustCompile(`https?://www\.douyin\.com/video/\d+`)},
	{
		platform: platform.Douyin,
		re:       regexp.MustCompile(`https?://www\.douyin\.com/[^\s]*[?&]modal_id=(\d+)`),
		canonical: func(groups []string) string {
			return "https://www.douyin.com/video/" + groups[1]
		},
	},
	{platform: platform.Xiaohongshu, re: regexp.MustCompile(`https?://www\.xiaohongshu\.com/(?:discovery/item|explore)/[a-f0-9]+[^\s"']*`)},
	{platform: platform.Xiaohongshu, re: regexp.MustCompile(`https?://xhslink\.com/[A-Za-z0-9/]+`)},
	{platform: platform.Bilibili, re: regexp.MustCompile(`https?://www\.bilibili\.com/video/[A-Za-z0-9]+[^\s"']*`)},
	{platform: platform.Bilibili, re: regexp.MustCompile(`https?://b23\.tv/[A-Za-z0-9]+`)},
}

// Classify ищет в тексте ссылку на поддерживаемую площадку
func Classify(text string) (Link, error) {
	for _, r := range rules {
		groups := r.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}

		link := Link{Platform: r.platform, URL: groups[0]}
		if r.canonical != nil {
			link.URL = r.canonical(groups)
		}

		return link, nil
	}

	return Link{}, ErrUnrecognized
}
