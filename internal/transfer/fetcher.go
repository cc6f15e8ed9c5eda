package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/schollz/progressbar/v3"
	"github.com/valyala/fasthttp"
)

const (
	chunkSize    = 1 << 20
	maxRedirects = 10
)

var (
	ErrStatus        = errors.New("unexpected http status")
	ErrTooManyHops   = errors.New("too many redirects")
	ErrEmptyLocation = errors.New("redirect without location")
)

// Fetcher потоково сохраняет тело ответа в файл блоками по 1 MiB
type Fetcher struct {
	client    *fasthttp.Client
	userAgent string

	// Куда рисуется прогресс, nil отключает вывод
	Progress io.Writer
}

func NewFetcher(t Transport) (*Fetcher, error) {
	client, err := t.FastClient()
	if err != nil {
		return nil, err
	}

	return &Fetcher{client: client, userAgent: t.userAgent(), Progress: os.Stderr}, nil
}

// Fetch скачивает src в dest и возвращает размер файла.
// headers дополняют Referer и User-Agent (например, Origin).
func (f *Fetcher) Fetch(ctx context.Context, src, dest, referer string, headers map[string]string) (int64, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(src)
	req.Header.Set("User-Agent", f.userAgent)

	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := f.do(req, resp); err != nil {
		return 0, err
	}

	size, err := f.save(ctx, resp, dest)
	if err != nil {
		// Недокачанный файл не оставляем
		if rmErr := os.Remove(dest); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			utils.Log.Warn(rmErr)
		}

		return 0, fmt.Errorf("failed to download %s: %w", src, err)
	}

	return size, nil
}

func (f *Fetcher) save(ctx context.Context, resp *fasthttp.Response, dest string) (int64, error) {
	file, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	var w io.Writer = file
	if f.Progress != nil {
		bar := newBar(f.Progress, int64(resp.Header.ContentLength()))
		defer func() {
			if err := bar.Finish(); err != nil {
				utils.Log.Debug(err)
			}
		}()

		w = io.MultiWriter(file, bar)
	}

	body := resp.BodyStream()
	if body == nil {
		if err = resp.BodyWriteTo(w); err != nil {
			return 0, err
		}

		return int64(len(resp.Body())), nil
	}

	return io.CopyBuffer(w, ctxReader{ctx: ctx, r: body}, make([]byte, chunkSize))
}

// ctxReader прерывает поток после отмены ctx
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}

// do выполняет запрос и сам проходит по редиректам, тело редиректа не читается
func (f *Fetcher) do(req *fasthttp.Request, resp *fasthttp.Response) error {
	for range maxRedirects {
		if err := f.client.Do(req, resp); err != nil {
			return fmt.Errorf("request %s: %w", req.URI(), err)
		}

		status := resp.StatusCode()

		if !fasthttp.StatusCodeIsRedirect(status) {
			if status < 200 || status > 299 {
				return fmt.Errorf("%w %d for %s", ErrStatus, status, req.URI())
			}

			return nil
		}

		location := resp.Header.Peek("Location")
		if len(location) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyLocation, req.URI())
		}

		req.URI().UpdateBytes(location)

		if err := resp.CloseBodyStream(); err != nil {
			utils.Log.Debug(err)
		}

		resp.Reset()
	}

	return ErrTooManyHops
}

func newBar(w io.Writer, size int64) *progressbar.ProgressBar {
	if size <= 0 {
		size = -1
	}

	return progressbar.NewOptions64(
		size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowTotalBytes(true),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
	)
}
