package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/config"
	"github.com/StounhandJ/video_download/internal/cookies"
	downloadersService "github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/urfave/cli/v3"
)

type Loginer interface {
	Login(ctx context.Context, loginURL, signalFile string) (browser.LoginResult, error)
}

type Forwarder interface {
	Forward(ctx context.Context, path, caption string) (int, error)
}

// Services компоненты, которые нужны командам после разбора флагов
type Services struct {
	Downloaders []downloadersService.IDownloader
	Login       Loginer

	// nil если Telegram не настроен
	Forwarder Forwarder
}

// Setup собирает Services по итоговому конфигу
type Setup func(cfg *config.Config, out io.Writer) (*Services, error)

type handler struct {
	cfg   *config.Config
	setup Setup
	out   io.Writer
}

// NewCommand корневая команда: без подкоманды скачивает видео по тексту из первого аргумента
func NewCommand(cfg *config.Config, setup Setup, out io.Writer) (*cli.Command, error) {
	flags, err := config.Flags(cfg)
	if err != nil {
		return nil, fmt.Errorf("config.Flags: %w", err)
	}

	h := handler{cfg: cfg, setup: setup, out: out}

	downloadUsage := "<分享链接或文本> [输出文件名]"

	return &cli.Command{
		Name:      "video-download",
		Usage:     "下载抖音 / 小红书 / B站 视频",
		ArgsUsage: downloadUsage,
		Flags:     flags,
		Writer:    out,
		ErrWriter: out,
		// Коды выхода выставляет main
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Before:         h.before,
		Action:         h.Download,
		Commands: []*cli.Command{
			{
				Name:      "download",
				Usage:     "下载视频",
				ArgsUsage: downloadUsage,
				Action:    h.Download,
			},
			{
				Name:      "login",
				Usage:     "登录保存cookie",
				ArgsUsage: "<平台>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "signal-file",
						Usage:     "Файл-сигнал: его появление завершает вход",
						TakesFile: true,
					},
				},
				Action: h.Login,
			},
			{
				Name:      "check-login",
				Usage:     "检查登录状态",
				ArgsUsage: "<平台>",
				Action:    h.CheckLogin,
			},
		},
	}, nil
}

func (h handler) before(ctx context.Context, _ *cli.Command) (context.Context, error) {
	utils.InitLogger(h.cfg.Application.LogLevel)

	return ctx, nil
}

func (h handler) store() *cookies.Store {
	return cookies.NewStore(config.ExpandPath(h.cfg.Application.CookieDir))
}

func (h handler) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(h.out, format+"\n", args...)
}
