package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StounhandJ/video_download/internal/cookies"
	"github.com/StounhandJ/video_download/internal/transfer"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	headlessWidth  = 1280
	headlessHeight = 720
)

// ErrNotFound за всё время ожидания ничего не найдено
var ErrNotFound = errors.New("nothing captured")

type Config struct {
	ChromePath string
	Transport  transfer.Transport

	CaptureWait       time.Duration
	ExtraWait         time.Duration
	RenderWait        time.Duration
	NavigationTimeout time.Duration
	LoginTimeout      time.Duration
}

// Driver каждое обращение запускает отдельный браузер и закрывает его перед возвратом
type Driver struct {
	cfg Config
}

func New(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

type Capture struct {
	URL   string
	Title string
}

type Evaluation struct {
	// Результат скрипта, сериализованный в строку на стороне страницы
	Value string
	Title string
	HTML  string
}

// Capture открывает страницу и ждёт первый сетевой ответ, подходящий под m
func (d *Driver) Capture(ctx context.Context, pageURL string, m Matcher, jar []cookies.Cookie) (Capture, error) {
	bctx, cancel, err := d.session(ctx, true, headlessWidth, headlessHeight, jar)
	if err != nil {
		return Capture{}, err
	}
	defer cancel()

	found := make(chan string, 1)

	chromedp.ListenTarget(bctx, func(ev any) {
		e, ok := ev.(*network.EventResponseReceived)
		if !ok || e.Response == nil {
			return
		}

		if !m.Match(responseFromCDP(e.Response)) {
			return
		}

		select {
		case found <- e.Response.URL:
		default:
		}
	})

	d.navigate(bctx, pageURL, d.cfg.NavigationTimeout)

	media, err := awaitCapture(ctx, found, d.cfg.CaptureWait, d.cfg.ExtraWait)
	if err != nil {
		return Capture{}, err
	}

	return Capture{URL: media, Title: d.title(bctx)}, nil
}

// awaitCapture ждёт first, затем ещё один раз extra
func awaitCapture(ctx context.Context, found <-chan string, first, extra time.Duration) (string, error) {
	media, ok := waitFor(ctx, found, first)
	if !ok && ctx.Err() == nil {
		utils.Log.Info("Ожидание загрузки видеопотока")

		media, ok = waitFor(ctx, found, extra)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !ok {
		return "", ErrNotFound
	}

	return media, nil
}

// Evaluate открывает страницу, ждёт отрисовку и выполняет script.
// Скрипт должен вернуть строку.
func (d *Driver) Evaluate(ctx context.Context, pageURL, script string, jar []cookies.Cookie) (Evaluation, error) {
	bctx, cancel, err := d.session(ctx, true, headlessWidth, headlessHeight, jar)
	if err != nil {
		return Evaluation{}, err
	}
	defer cancel()

	d.navigate(bctx, pageURL, d.cfg.NavigationTimeout)

	select {
	case <-ctx.Done():
		return Evaluation{}, ctx.Err()
	case <-time.After(d.cfg.RenderWait):
	}

	var result Evaluation

	if err = chromedp.Run(bctx, chromedp.Evaluate(script, &result.Value)); err != nil {
		return Evaluation{}, fmt.Errorf("evaluate on %s: %w", pageURL, err)
	}

	result.Title = d.title(bctx)

	if err = chromedp.Run(bctx, chromedp.OuterHTML("html", &result.HTML, chromedp.ByQuery)); err != nil {
		utils.Log.Debugf("Не удалось получить HTML страницы: %s", err)
	}

	return result, nil
}

func (d *Driver) session(ctx context.Context, headless bool, width, height int64, jar []cookies.Cookie) (context.Context, context.CancelFunc, error) {
	t := d.cfg.Transport

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.UserAgent(utils.StringNotEmptyCoalesce(t.UserAgent, transfer.DefaultUserAgent)),
		chromedp.WindowSize(int(width), int(height)),
	)

	if d.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(d.cfg.ChromePath))
	}

	if t.ProxyURL != "" {
		opts = append(opts, chromedp.ProxyServer(t.ProxyURL))
	}

	if t.InsecureTLS {
		opts = append(opts, chromedp.Flag("ignore-certificate-errors", true))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	bctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(utils.Log.Debugf))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}

	actions := []chromedp.Action{
		network.Enable(),
		chromedp.EmulateViewport(width, height),
	}

	if len(jar) > 0 {
		actions = append(actions, network.SetCookies(cookieParams(jar)))
		utils.Log.Debugf("В браузер загружено %d cookie", len(jar))
	}

	// Первый Run запускает браузер, его время жизни привязано к bctx
	if err := chromedp.Run(bctx, actions...); err != nil {
		cancel()

		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return bctx, cancel, nil
}

// navigate ошибки навигации не прерывают работу, страница могла загрузиться частично
func (d *Driver) navigate(ctx context.Context, pageURL string, timeout time.Duration) {
	nctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(nctx, chromedp.Navigate(pageURL)); err != nil {
		utils.Log.Warnf("Ошибка загрузки страницы %s: %s", pageURL, err)
	}
}

func (d *Driver) title(ctx context.Context) string {
	var title string

	if err := chromedp.Run(ctx, chromedp.Title(&title)); err != nil {
		utils.Log.Debugf("Не удалось получить заголовок: %s", err)

		return ""
	}

	return title
}

// waitFor ждёт значение из ch не дольше d
func waitFor(ctx context.Context, ch <-chan string, d time.Duration) (string, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case v := <-ch:
		return v, true
	case <-timer.C:
		return "", false
	case <-ctx.Done():
		return "", false
	}
}

func cookieParams(jar []cookies.Cookie) []*network.CookieParam {
	params := make([]*network.CookieParam, 0, len(jar))

	for _, c := range jar {
		p := &network.CookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
		}

		switch network.CookieSameSite(c.SameSite) {
		case network.CookieSameSiteStrict, network.CookieSameSiteLax, network.CookieSameSiteNone:
			p.SameSite = network.CookieSameSite(c.SameSite)
		}

		if c.Expires > 0 {
			sec := int64(c.Expires)
			exp := cdp.TimeSinceEpoch(time.Unix(sec, 0))
			p.Expires = &exp
		}

		params = append(params, p)
	}

	return params
}

func fromCDPCookies(cs []*network.Cookie) []cookies.Cookie {
	jar := make([]cookies.Cookie, 0, len(cs))

	for _, c := range cs {
		expires := c.Expires
		if c.Session {
			expires = -1
		}

		jar = append(jar, cookies.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  expires,
			HTTPOnly: c.HTTPOnly,
			Secure:   c.Secure,
			SameSite: c.SameSite.String(),
		})
	}

	return jar
}
