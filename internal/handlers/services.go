package handlers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/config"
	"github.com/StounhandJ/video_download/internal/cookies"
	downloadersService "github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/downloaders/bilibili"
	"github.com/StounhandJ/video_download/internal/downloaders/douyin"
	"github.com/StounhandJ/video_download/internal/downloaders/xiaohongshu"
	"github.com/StounhandJ/video_download/internal/remux"
	"github.com/StounhandJ/video_download/internal/transfer"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/StounhandJ/video_download/internal/utils/telegram"
)

// Редиректы и подключение к прокси, на скачивание не влияет
const requestTimeout = 30 * time.Second

// DefaultSetup настоящие компоненты: chromedp, fasthttp, ffmpeg и telego
func DefaultSetup(cfg *config.Config, out io.Writer) (*Services, error) {
	app := cfg.Application

	transport := transfer.Transport{
		UserAgent:   app.UserAgent,
		ProxyURL:    app.ProxyURL,
		InsecureTLS: app.InsecureTLS,
		Timeout:     requestTimeout,
	}

	resolver, err := transfer.NewResolver(transport)
	if err != nil {
		return nil, fmt.Errorf("transfer.NewResolver: %w", err)
	}

	fetcher, err := transfer.NewFetcher(transport)
	if err != nil {
		return nil, fmt.Errorf("transfer.NewFetcher: %w", err)
	}

	driver := browser.New(browser.Config{
		ChromePath:        cfg.Browser.ChromePath,
		Transport:         transport,
		CaptureWait:       cfg.Browser.CaptureWait.Std(),
		ExtraWait:         cfg.Browser.ExtraWait.Std(),
		RenderWait:        cfg.Browser.RenderWait.Std(),
		NavigationTimeout: cfg.Browser.NavigationTimeout.Std(),
		LoginTimeout:      cfg.Browser.LoginTimeout.Std(),
	})

	outputDir := config.ExpandPath(app.OutputDir)
	if err = os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	deps := downloadersService.Deps{
		Browser:    driver,
		Resolver:   resolver,
		Fetcher:    fetcher,
		Remuxer:    remux.New(app.FFmpegPath),
		Cookies:    cookies.NewStore(config.ExpandPath(app.CookieDir)),
		OutputDir:  outputDir,
		ScratchDir: config.ExpandPath(app.ScratchDir),
		Out:        out,
	}

	services := &Services{
		Downloaders: []downloadersService.IDownloader{
			douyin.New(deps),
			xiaohongshu.New(deps),
			bilibili.New(deps),
		},
		Login: driver,
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		forwarder, err := telegram.NewForwarder(cfg.Telegram.BotToken, cfg.Telegram.ChatID, app.LogLevel == "debug")
		if err != nil {
			return nil, err
		}

		services.Forwarder = forwarder
	} else if cfg.Telegram.BotToken != "" {
		utils.Log.Warn("Не указан telegram-chat-id, пересылка отключена")
	}

	return services, nil
}
