package xiaohongshu

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/StounhandJ/video_download/internal/utils"
)

var (
	noteIDRe  = regexp.MustCompile(`/(?:discovery/item|explore)/([a-f0-9]+)`)
	siteTitle = regexp.MustCompile(`小红书\s*[-–—]\s*你的生活兴趣社区`)

	// Две независимые проверки, хватает любой
	matcher = browser.Matcher{
		{Contains: []string{"xhscdn.com"}, ContentType: "video"},
		{Pattern: regexp.MustCompile(`sns-(video|bak)[^.]*\.xhscdn\.com.*\.mp4`)},
	}
)

type downloader struct {
	deps     downloaders.Deps
	platform platform.Platform
}

func New(deps downloaders.Deps) *downloader {
	return &downloader{deps: deps, platform: platform.MustByID(platform.Xiaohongshu)}
}

func (d downloader) Platform() platform.ID {
	return platform.Xiaohongshu
}

func (d downloader) Download(ctx context.Context, link, outputName string) (*downloaders.Video, error) {
	d.deps.Printf("[1/4] 解析小红书链接: %s", link)

	if strings.Contains(link, "xhslink.com") {
		final, err := d.deps.Resolve(ctx, link)
		if err != nil {
			return nil, err
		}

		link = final
		d.deps.Printf("  跳转到: %s", link)
	}

	noteID := "unknown"
	if m := noteIDRe.FindStringSubmatch(link); m != nil {
		noteID = m[1]
	}

	d.deps.Printf("[2/4] 笔记ID: %s, 启动无头浏览器...", noteID)

	capture, err := d.deps.Browser.Capture(ctx, link, matcher, d.deps.LoadCookies(d.platform))
	if err != nil {
		if errors.Is(err, browser.ErrNotFound) {
			return nil, fmt.Errorf("未能捕获到视频CDN地址（可能是图文笔记而非视频）: %w", downloaders.ErrCaptureTimeout)
		}

		return nil, err
	}

	d.deps.Printf("[3/4] 捕获到视频地址，开始下载...")

	title := strings.ReplaceAll(capture.Title, " - 小红书", "")
	title = siteTitle.ReplaceAllString(title, "")

	name := downloaders.FileName(outputName, title, "xiaohongshu_"+noteID)
	path := d.deps.OutputPath(name)

	size, err := d.deps.Fetch(ctx, capture.URL, path, d.platform)
	if err != nil {
		return nil, err
	}

	d.deps.Printf("[4/4] 下载完成: %s (%s)", path, utils.FormatMB(size))

	return &downloaders.Video{
		Platform: platform.Xiaohongshu,
		Title:    strings.TrimSpace(title),
		Path:     path,
		Size:     size,
	}, nil
}
