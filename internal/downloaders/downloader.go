package downloaders

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/cookies"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/StounhandJ/video_download/internal/utils"
)

type IDownloader interface {
	Platform() platform.ID
	// Download скачивает ролик по ссылке из Classify.
	// Пустой outputName значит имя из заголовка страницы.
	Download(ctx context.Context, link, outputName string) (*Video, error)
}

type Video struct {
	Platform platform.ID
	Title    string
	Path     string
	Size     int64
}

type Browser interface {
	Capture(ctx context.Context, pageURL string, m browser.Matcher, jar []cookies.Cookie) (browser.Capture, error)
	Evaluate(ctx context.Context, pageURL, script string, jar []cookies.Cookie) (browser.Evaluation, error)
}

type Resolver interface {
	Resolve(ctx context.Context, link string) (string, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, src, dest, referer string, headers map[string]string) (int64, error)
}

type Remuxer interface {
	Merge(ctx context.Context, video, audio, output string) error
}

type CookieLoader interface {
	Load(p platform.Platform) []cookies.Cookie
}

// Deps общие зависимости загрузчиков
type Deps struct {
	Browser  Browser
	Resolver Resolver
	Fetcher  Fetcher
	Remuxer  Remuxer
	Cookies  CookieLoader

	OutputDir  string
	ScratchDir string

	// Сюда пишется прогресс для пользователя
	Out io.Writer
}

func (d Deps) Printf(format string, args ...any) {
	if d.Out == nil {
		return
	}

	_, _ = fmt.Fprintf(d.Out, format+"\n", args...)
}

func (d Deps) OutputPath(name string) string {
	return filepath.Join(d.OutputDir, name)
}

// LoadCookies cookie площадки для браузера, nil если их нет
func (d Deps) LoadCookies(p platform.Platform) []cookies.Cookie {
	if d.Cookies == nil {
		return nil
	}

	jar := d.Cookies.Load(p)
	if jar != nil {
		d.Printf("  已加载 %s 登录态 (%d cookies)", p.ID, len(jar))
	}

	return jar
}

// Resolve раскрывает короткую ссылку
func (d Deps) Resolve(ctx context.Context, link string) (string, error) {
	final, err := d.Resolver.Resolve(ctx, link)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRedirect, err)
	}

	return final, nil
}

// Fetch скачивает один поток в dest
func (d Deps) Fetch(ctx context.Context, src, dest string, p platform.Platform) (int64, error) {
	size, err := d.Fetcher.Fetch(ctx, src, dest, p.Referer, p.Headers())
	if err != nil {
		return size, fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return size, nil
}

// FileName имя файла из заголовка страницы без служебных суффиксов площадки
func FileName(outputName, title, fallback string, strip ...string) string {
	if outputName != "" {
		return outputName
	}

	return utils.CleanFilename(StripTitle(title, strip...), fallback) + ".mp4"
}

// StripTitle убирает из заголовка суффиксы площадки
func StripTitle(title string, strip ...string) string {
	for _, s := range strip {
		title = strings.ReplaceAll(title, s, "")
	}

	return strings.TrimSpace(title)
}
