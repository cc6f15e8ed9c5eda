package browser

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/StounhandJ/video_download/internal/cookies"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
)

const (
	loginWidth  = 1280
	loginHeight = 800

	loginNavigationTimeout = 60 * time.Second
	loginPollInterval      = time.Second
)

type LoginReason int

const (
	LoginSignal LoginReason = iota
	LoginClosed
	LoginTimeout
)

type LoginResult struct {
	Cookies []cookies.Cookie
	Reason  LoginReason
}

// Login открывает видимый браузер на loginURL и раз в секунду проверяет
// сигнальный файл и живость окна. Возвращает последний снимок cookie.
func (d *Driver) Login(ctx context.Context, loginURL, signalFile string) (LoginResult, error) {
	if signalFile != "" {
		if err := os.Remove(signalFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			utils.Log.Warnf("Не удалось удалить старый сигнальный файл: %s", err)
		}
	}

	bctx, cancel, err := d.session(ctx, false, loginWidth, loginHeight, nil)
	if err != nil {
		return LoginResult{}, err
	}
	defer cancel()

	d.navigate(bctx, loginURL, loginNavigationTimeout)

	deadline := time.NewTimer(d.cfg.LoginTimeout)
	defer deadline.Stop()

	ticker := time.NewTicker(loginPollInterval)
	defer ticker.Stop()

	var result LoginResult

	for {
		if signalFile != "" && fileExists(signalFile) {
			if err = os.Remove(signalFile); err != nil {
				utils.Log.Debug(err)
			}

			if jar, err := snapshot(bctx); err == nil {
				result.Cookies = jar
			}

			result.Reason = LoginSignal

			return result, nil
		}

		jar, err := snapshot(bctx)
		if err != nil {
			utils.Log.Debugf("Браузер закрыт: %s", err)

			result.Reason = LoginClosed

			return result, nil
		}

		result.Cookies = jar

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-deadline.C:
			result.Reason = LoginTimeout

			return result, nil
		case <-ticker.C:
		}
	}
}

// snapshot все cookie браузера, ошибка означает закрытое окно
func snapshot(ctx context.Context) ([]cookies.Cookie, error) {
	var cs []*network.Cookie

	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		cs, err = storage.GetCookies().Do(ctx)

		return err
	}))
	if err != nil {
		return nil, err
	}

	return fromCDPCookies(cs), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
