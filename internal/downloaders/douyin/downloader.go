package douyin

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/StounhandJ/video_download/internal/utils"
)

const (
	pageURL     = "https://www.douyin.com/video/"
	titleSuffix = " - 抖音"
)

var (
	videoIDRe = regexp.MustCompile(`/video/(\d+)`)

	// Видеопоток отдаётся с douyinvod.com, в пути есть video_mp4
	matcher = browser.Matcher{
		{Contains: []string{"douyinvod.com", "video_mp4"}},
	}
)

var ErrNoVideoID = errors.New("video id not found")

type downloader struct {
	deps     downloaders.Deps
	platform platform.Platform
}

func New(deps downloaders.Deps) *downloader {
	return &downloader{deps: deps, platform: platform.MustByID(platform.Douyin)}
}

func (d downloader) Platform() platform.ID {
	return platform.Douyin
}

func (d downloader) Download(ctx context.Context, link, outputName string) (*downloaders.Video, error) {
	d.deps.Printf("[1/4] 解析抖音链接: %s", link)

	videoID, err := d.videoID(ctx, link)
	if err != nil {
		return nil, err
	}

	d.deps.Printf("[2/4] 视频ID: %s, 启动无头浏览器...", videoID)

	capture, err := d.deps.Browser.Capture(ctx, pageURL+videoID, matcher, d.deps.LoadCookies(d.platform))
	if err != nil {
		if errors.Is(err, browser.ErrNotFound) {
			return nil, fmt.Errorf("未能捕获到视频CDN地址: %w", downloaders.ErrCaptureTimeout)
		}

		return nil, err
	}

	d.deps.Printf("[3/4] 捕获到视频地址，开始下载...")

	name := downloaders.FileName(outputName, capture.Title, "douyin_"+videoID, titleSuffix)
	path := d.deps.OutputPath(name)

	size, err := d.deps.Fetch(ctx, capture.URL, path, d.platform)
	if err != nil {
		return nil, err
	}

	d.deps.Printf("[4/4] 下载完成: %s (%s)", path, utils.FormatMB(size))

	return &downloaders.Video{
		Platform: platform.Douyin,
		Title:    downloaders.StripTitle(capture.Title, titleSuffix),
		Path:     path,
		Size:     size,
	}, nil
}

// videoID берёт ID из ссылки, короткую ссылку сначала раскрывает
func (d downloader) videoID(ctx context.Context, link string) (string, error) {
	if m := videoIDRe.FindStringSubmatch(link); m != nil {
		return m[1], nil
	}

	final, err := d.deps.Resolve(ctx, link)
	if err != nil {
		return "", err
	}

	m := videoIDRe.FindStringSubmatch(final)
	if m == nil {
		return "", fmt.Errorf("%w: %w, final url %s", downloaders.ErrRedirect, ErrNoVideoID, final)
	}

	return m[1], nil
}
