package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/StounhandJ/video_download/internal/browser"
	downloadersService "github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/urfave/cli/v3"
)

// Download разбирает текст, выбирает загрузчик площадки и скачивает ролик
func (h handler) Download(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		h.usage()

		return cli.Exit("", 1)
	}

	link, err := downloadersService.Classify(cmd.Args().First())
	if err != nil {
		h.printf("错误: 无法识别平台")
		h.printf("支持: 抖音(v.douyin.com) / 小红书(xiaohongshu.com) / B站(bilibili.com)")

		return cli.Exit("", 1)
	}

	utils.Log.Infof("Площадка %s, ссылка %s", link.Platform, link.URL)

	services, err := h.setup(h.cfg, h.out)
	if err != nil {
		return err
	}

	var downloader downloadersService.IDownloader

	for _, d := range services.Downloaders {
		if d.Platform() == link.Platform {
			downloader = d

			break
		}
	}

	// Загрузчик не найден
	if downloader == nil {
		return fmt.Errorf("%w: %s", downloadersService.ErrUnrecognized, link.Platform)
	}

	video, err := downloader.Download(ctx, link.URL, cmd.Args().Get(1))
	if err != nil {
		return err
	}

	if services.Forwarder != nil {
		if _, err = services.Forwarder.Forward(ctx, video.Path, video.Title); err != nil {
			utils.Log.Errorf("Не удалось переслать видео в Telegram: %s", err)
		} else {
			utils.Log.Infof("Видео %s переслано в Telegram", video.Path)
		}
	}

	return nil
}

// Login открывает видимый браузер и сохраняет cookie площадки
func (h handler) Login(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		h.printf("用法: video-download login <平台> [--signal-file <path>]")
		h.printf("平台: %s", strings.Join(platform.IDs(), " / "))

		return cli.Exit("", 1)
	}

	p, ok := platform.ByID(cmd.Args().First())
	if !ok {
		return h.unknownPlatform(cmd.Args().First())
	}

	signalFile := cmd.String("signal-file")

	services, err := h.setup(h.cfg, h.out)
	if err != nil {
		return err
	}

	h.printf("正在打开 %s 登录页面...", p.ID)

	if signalFile != "" {
		h.printf("请在浏览器中完成登录，然后点击会话中的确认按钮，或关闭浏览器窗口。")
	} else {
		h.printf("请在浏览器中完成登录，登录成功后关闭浏览器窗口即可。")
	}

	h.printf("")

	result, err := services.Login.Login(ctx, p.LoginURL, signalFile)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("login: %w", err)
	}

	switch result.Reason {
	case browser.LoginSignal:
		h.printf("  收到确认信号，正在保存 cookie...")
	case browser.LoginClosed:
		h.printf("  检测到浏览器关闭，正在保存 cookie...")
	case browser.LoginTimeout:
		utils.Log.Warnf("Время входа истекло, сохраняется последний снимок cookie")
	}

	if len(result.Cookies) == 0 {
		h.printf("\n未获取到 cookie，请确认已完成登录。")

		return nil
	}

	store := h.store()
	if err = store.Save(p.ID, result.Cookies); err != nil {
		return fmt.Errorf("save cookies: %w", err)
	}

	h.printf("  已保存 %d 个 cookie 到 %s", len(result.Cookies), store.Path(p.ID))
	h.printf("\n%s 登录成功！后续下载将自动使用登录态。", p.ID)

	return nil
}

// CheckLogin код выхода 2 значит, что площадке нужен вход
func (h handler) CheckLogin(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		h.printf("用法: video-download check-login <平台>")

		return cli.Exit("", 1)
	}

	p, ok := platform.ByID(cmd.Args().First())
	if !ok {
		// Неизвестной площадке вход не нужен
		utils.Log.Warnf("Неизвестная площадка %q, вход не требуется", cmd.Args().First())
		h.printf("LOGIN_OK:%s", cmd.Args().First())

		return nil
	}

	if h.store().NeedsLogin(p) {
		h.printf("LOGIN_REQUIRED:%s", p.ID)

		return cli.Exit("", 2)
	}

	h.printf("LOGIN_OK:%s", p.ID)

	return nil
}

func (h handler) unknownPlatform(name string) error {
	h.printf("错误: 不支持的平台 '%s'", name)
	h.printf("支持: %s", strings.Join(platform.IDs(), ", "))

	return cli.Exit("", 1)
}

func (h handler) usage() {
	h.printf("用法:")
	h.printf("  video-download <分享链接或文本> [输出文件名]  # 下载视频")
	h.printf("  video-download login <平台> [--signal-file F] # 登录保存cookie")
	h.printf("  video-download check-login <平台>             # 检查登录状态")
	h.printf("")
	h.printf("支持平台: 抖音 / 小红书 / B站")
	h.printf("登录平台: %s", strings.Join(platform.IDs(), " / "))
}
