// Package downloaderstest подменяет браузер, сеть и ffmpeg в тестах загрузчиков
package downloaderstest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/cookies"
	"github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/platform"
)

var ErrUnexpected = errors.New("unexpected call")

// Browser отдаёт заранее заданный ответ и запоминает вызовы
type Browser struct {
	Responses []browser.Response
	Title     string
	Eval      browser.Evaluation
	Err       error

	mu        sync.Mutex
	Pages     []string
	Cookies   [][]cookies.Cookie
	Evaluated []string
}

// Capture прогоняет Responses через matcher, как это делает настоящий драйвер
func (b *Browser) Capture(_ context.Context, pageURL string, m browser.Matcher, jar []cookies.Cookie) (browser.Capture, error) {
	b.record(pageURL, jar)

	if b.Err != nil {
		return browser.Capture{}, b.Err
	}

	for _, r := range b.Responses {
		if m.Match(r) {
			return browser.Capture{URL: r.URL, Title: b.Title}, nil
		}
	}

	return browser.Capture{}, browser.ErrNotFound
}

func (b *Browser) Evaluate(_ context.Context, pageURL, script string, jar []cookies.Cookie) (browser.Evaluation, error) {
	b.record(pageURL, jar)

	b.mu.Lock()
	b.Evaluated = append(b.Evaluated, script)
	b.mu.Unlock()

	if b.Err != nil {
		return browser.Evaluation{}, b.Err
	}

	return b.Eval, nil
}

func (b *Browser) record(pageURL string, jar []cookies.Cookie) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Pages = append(b.Pages, pageURL)
	b.Cookies = append(b.Cookies, jar)
}

// Resolver карта короткая ссылка -> конечный URL
type Resolver struct {
	Redirects map[string]string
	Err       error

	Calls []string
}

func (r *Resolver) Resolve(_ context.Context, link string) (string, error) {
	r.Calls = append(r.Calls, link)

	if r.Err != nil {
		return "", r.Err
	}

	final, ok := r.Redirects[link]
	if !ok {
		return "", fmt.Errorf("%w: resolve %s", ErrUnexpected, link)
	}

	return final, nil
}

type FetchCall struct {
	Src, Dest, Referer string
	Headers            map[string]string
}

// Fetcher пишет в dest содержимое Bodies[src]
type Fetcher struct {
	Bodies map[string][]byte
	Err    error

	Calls []FetchCall
}

func (f *Fetcher) Fetch(_ context.Context, src, dest, referer string, headers map[string]string) (int64, error) {
	f.Calls = append(f.Calls, FetchCall{Src: src, Dest: dest, Referer: referer, Headers: headers})

	if f.Err != nil {
		return 0, f.Err
	}

	body, ok := f.Bodies[src]
	if !ok {
		return 0, fmt.Errorf("%w: fetch %s", ErrUnexpected, src)
	}

	if err := os.WriteFile(dest, body, 0o600); err != nil {
		return 0, err
	}

	return int64(len(body)), nil
}

// Remuxer склеивает файлы побайтно
type Remuxer struct {
	Err error
	// С Err оставляет недописанный output, как ffmpeg с -y
	Partial bool

	Inputs [][2]string
}

func (r *Remuxer) Merge(_ context.Context, video, audio, output string) error {
	r.Inputs = append(r.Inputs, [2]string{video, audio})

	if r.Err != nil {
		if r.Partial {
			if err := os.WriteFile(output, []byte("PARTIAL"), 0o600); err != nil {
				return err
			}
		}

		return r.Err
	}

	v, err := os.ReadFile(video)
	if err != nil {
		return err
	}

	a, err := os.ReadFile(audio)
	if err != nil {
		return err
	}

	return os.WriteFile(output, bytes.Join([][]byte{v, a}, nil), 0o600)
}

// Cookies фиксированный набор cookie на площадку
type Cookies map[platform.ID][]cookies.Cookie

func (c Cookies) Load(p platform.Platform) []cookies.Cookie {
	return c[p.ID]
}

// Deps собирает зависимости с выводом в out
func Deps(outputDir, scratchDir string, out *bytes.Buffer, b *Browser, r *Resolver, f *Fetcher, m *Remuxer) downloaders.Deps {
	return downloaders.Deps{
		Browser:    b,
		Resolver:   r,
		Fetcher:    f,
		Remuxer:    m,
		Cookies:    Cookies{},
		OutputDir:  outputDir,
		ScratchDir: scratchDir,
		Out:        out,
	}
}
