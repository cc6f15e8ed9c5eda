package bilibili

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/google/uuid"
)

const (
	pageURL     = "https://www.bilibili.com/video/%s/"
	titleSuffix = "_哔哩哔哩_bilibili"

	scratchPrefix = "bili_dl-"
	videoFile     = "video.m4s"
	audioFile     = "audio.m4s"
)

var bvidRe = regexp.MustCompile(`/video/([A-Za-z0-9]+)`)

type downloader struct {
	deps     downloaders.Deps
	platform platform.Platform
}

func New(deps downloaders.Deps) *downloader {
	return &downloader{deps: deps, platform: platform.MustByID(platform.Bilibili)}
}

func (d downloader) Platform() platform.ID {
	return platform.Bilibili
}

func (d downloader) Download(ctx context.Context, link, outputName string) (*downloaders.Video, error) {
	d.deps.Printf("[1/5] 解析B站链接: %s", link)

	if strings.Contains(link, "b23.tv") {
		final, err := d.deps.Resolve(ctx, link)
		if err != nil {
			return nil, err
		}

		link = final
		d.deps.Printf("  跳转到: %s", link)
	}

	bvid := "unknown"
	if m := bvidRe.FindStringSubmatch(link); m != nil {
		bvid = m[1]
	}

	d.deps.Printf("[2/5] BV号: %s, 启动无头浏览器...", bvid)

	info, title, err := d.playInfo(ctx, bvid)
	if err != nil {
		return nil, err
	}

	name := downloaders.FileName(outputName, title, "bilibili_"+bvid, titleSuffix)
	video := &downloaders.Video{
		Platform: platform.Bilibili,
		Title:    downloaders.StripTitle(title, titleSuffix),
		Path:     d.deps.OutputPath(name),
	}

	switch {
	case info.Data.Dash != nil && len(info.Data.Dash.Video) > 0:
		video.Size, err = d.downloadDash(ctx, info.Data.Dash, video.Path)
	case len(info.Data.Durl) > 0:
		video.Size, err = d.downloadDurl(ctx, info.Data.Durl, video.Path)
	default:
		return nil, fmt.Errorf("无法解析视频流信息: %w", downloaders.ErrAccessGated)
	}

	if err != nil {
		return nil, err
	}

	return video, nil
}

// playInfo достаёт window.__playinfo__ со страницы, при его отсутствии разбирает HTML
func (d downloader) playInfo(ctx context.Context, bvid string) (*PlayInfo, string, error) {
	eval, err := d.deps.Browser.Evaluate(ctx, fmt.Sprintf(pageURL, bvid), playInfoScript, d.deps.LoadCookies(d.platform))
	if err != nil {
		return nil, "", err
	}

	title := eval.Title

	info, evalTitle, err := ParsePayload(eval.Value)
	if err != nil {
		utils.Log.Warnf("Не удалось разобрать ответ скрипта: %s", err)
	}

	if evalTitle != "" {
		title = evalTitle
	}

	if info == nil && eval.HTML != "" {
		info, err = ExtractPlayInfo(eval.HTML)
		if err != nil && !errors.Is(err, ErrNoPlayInfo) {
			utils.Log.Warnf("Не удалось разобрать __playinfo__ из HTML: %s", err)
		}
	}

	if info == nil {
		return nil, "", fmt.Errorf("未找到 __playinfo__，可能是番剧/付费内容: %w", downloaders.ErrCaptureTimeout)
	}

	return info, title, nil
}

func (d downloader) downloadDash(ctx context.Context, dash *Dash, output string) (int64, error) {
	bestVideo, okVideo := Best(dash.Video)
	bestAudio, okAudio := Best(dash.Audio)

	if !okVideo || !okAudio {
		return 0, fmt.Errorf("DASH без видео или аудио: %w", downloaders.ErrAccessGated)
	}

	d.deps.Printf("[3/5] 视频: %dx%d %s", bestVideo.Width, bestVideo.Height, bestVideo.Codecs)
	d.deps.Printf("       音频: %s", bestAudio.Codecs)

	scratch := filepath.Join(d.deps.ScratchDir, scratchPrefix+uuid.NewString())
	if err := os.MkdirAll(scratch, 0o700); err != nil {
		return 0, fmt.Errorf("%w: %w", downloaders.ErrTransfer, err)
	}

	videoPath := filepath.Join(scratch, videoFile)
	audioPath := filepath.Join(scratch, audioFile)

	defer cleanup(scratch, videoPath, audioPath)

	d.deps.Printf("[3/5] 下载视频流...")

	size, err := d.deps.Fetch(ctx, bestVideo.BaseURL, videoPath, d.platform)
	if err != nil {
		return 0, err
	}

	d.deps.Printf("       视频: %s", utils.FormatMB(size))
	d.deps.Printf("[4/5] 下载音频流...")

	size, err = d.deps.Fetch(ctx, bestAudio.BaseURL, audioPath, d.platform)
	if err != nil {
		return 0, err
	}

	d.deps.Printf("       音频: %s", utils.FormatMB(size))
	d.deps.Printf("[5/5] ffmpeg 合并音视频...")

	if err = d.deps.Remuxer.Merge(ctx, videoPath, audioPath, output); err != nil {
		// ffmpeg с -y мог успеть создать выходной файл
		cleanup("", output)

		return 0, fmt.Errorf("ffmpeg 合并失败: %w: %w", downloaders.ErrRemux, err)
	}

	stat, err := os.Stat(output)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", downloaders.ErrRemux, err)
	}

	d.deps.Printf("下载完成: %s (%s)", output, utils.FormatMB(stat.Size()))

	return stat.Size(), nil
}

// downloadDurl старый формат без DASH, берётся только первый сегмент
func (d downloader) downloadDurl(ctx context.Context, durl []Durl, output string) (int64, error) {
	if len(durl) > 1 {
		utils.Log.Warnf("durl содержит %d сегментов, скачивается только первый", len(durl))
	}

	d.deps.Printf("[3/5] 检测到非 DASH 格式，直接下载...")

	size, err := d.deps.Fetch(ctx, durl[0].URL, output, d.platform)
	if err != nil {
		return 0, err
	}

	d.deps.Printf("[5/5] 下载完成: %s (%s)", output, utils.FormatMB(size))

	return size, nil
}

// cleanup удаляет временные файлы, ошибки игнорируются
func cleanup(dir string, files ...string) {
	for _, f := range files {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			utils.Log.Debug(err)
		}
	}

	if dir == "" {
		return
	}

	if err := os.Remove(dir); err != nil {
		utils.Log.Debug(err)
	}
}
