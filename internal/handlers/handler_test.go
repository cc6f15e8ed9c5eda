package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/config"
	"github.com/StounhandJ/video_download/internal/cookies"
	"github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/handlers"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type downloadCall struct {
	link, outputName string
}

type fakeDownloader struct {
	platform platform.ID
	err      error
	calls    []downloadCall
}

func (d *fakeDownloader) Platform() platform.ID {
	return d.platform
}

func (d *fakeDownloader) Download(_ context.Context, link, outputName string) (*downloaders.Video, error) {
	d.calls = append(d.calls, downloadCall{link: link, outputName: outputName})

	if d.err != nil {
		return nil, d.err
	}

	return &downloaders.Video{Platform: d.platform, Title: "标题", Path: "/out/" + string(d.platform) + ".mp4", Size: 1}, nil
}

type fakeLogin struct {
	result     browser.LoginResult
	url        string
	signalFile string
}

func (l *fakeLogin) Login(_ context.Context, loginURL, signalFile string) (browser.LoginResult, error) {
	l.url = loginURL
	l.signalFile = signalFile

	return l.result, nil
}

type fakeForwarder struct {
	paths, captions []string
}

func (f *fakeForwarder) Forward(_ context.Context, path, caption string) (int, error) {
	f.paths = append(f.paths, path)
	f.captions = append(f.captions, caption)

	return 1, nil
}

type env struct {
	cfg        config.Config
	out        bytes.Buffer
	services   *handlers.Services
	setupCalls int
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{cfg: config.Default()}
	e.cfg.Application.CookieDir = t.TempDir()
	e.cfg.Application.OutputDir = t.TempDir()

	e.services = &handlers.Services{
		Downloaders: []downloaders.IDownloader{
			&fakeDownloader{platform: platform.Douyin},
			&fakeDownloader{platform: platform.Xiaohongshu},
			&fakeDownloader{platform: platform.Bilibili},
		},
		Login: &fakeLogin{},
	}

	return e
}

func (e *env) run(t *testing.T, args ...string) error {
	t.Helper()

	setup := func(*config.Config, io.Writer) (*handlers.Services, error) {
		e.setupCalls++

		return e.services, nil
	}

	cmd, err := handlers.NewCommand(&e.cfg, setup, &e.out)
	require.NoError(t, err)

	return cmd.Run(context.Background(), append([]string{"video-download"}, args...))
}

func (e *env) downloader(id platform.ID) *fakeDownloader {
	for _, d := range e.services.Downloaders {
		if d.Platform() == id {
			return d.(*fakeDownloader)
		}
	}

	return nil
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, code, exitErr.ExitCode())
}

func TestCheckLoginWithoutCookies(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "check-login", "bilibili")
	requireExitCode(t, err, 2)
	require.Equal(t, "LOGIN_REQUIRED:bilibili\n", e.out.String())
	require.Zero(t, e.setupCalls)
}

func TestCheckLoginValidCookies(t *testing.T) {
	e := newEnv(t)

	store := cookies.NewStore(e.cfg.Application.CookieDir)
	require.NoError(t, store.Save(platform.Bilibili, []cookies.Cookie{
		{Name: "buvid3", Value: "x", Expires: -1},
		{Name: "SESSDATA", Value: "s", Expires: float64(time.Now().Add(24 * time.Hour).Unix())},
	}))

	err := e.run(t, "check-login", "bilibili")
	require.NoError(t, err)
	require.Equal(t, "LOGIN_OK:bilibili\n", e.out.String())
}

func TestCheckLoginExpiredCookies(t *testing.T) {
	e := newEnv(t)

	store := cookies.NewStore(e.cfg.Application.CookieDir)
	require.NoError(t, store.Save(platform.Bilibili, []cookies.Cookie{
		{Name: "SESSDATA", Value: "s", Expires: float64(time.Now().Add(-time.Hour).Unix())},
	}))

	err := e.run(t, "check-login", "bilibili")
	requireExitCode(t, err, 2)
}

func TestCheckLoginNotRequired(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "check-login", "douyin")
	require.NoError(t, err)
	require.Equal(t, "LOGIN_OK:douyin\n", e.out.String())
}

func TestCheckLoginUnknownPlatformNeedsNoLogin(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "check-login", "youtube")
	require.NoError(t, err)
	require.Equal(t, "LOGIN_OK:youtube\n", e.out.String())
	require.Zero(t, e.setupCalls)
}

func TestDownloadUnrecognizedInput(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "just some text without links")
	requireExitCode(t, err, 1)
	require.Contains(t, e.out.String(), "无法识别平台")
	require.Zero(t, e.setupCalls, "no component touched")

	for _, d := range e.services.Downloaders {
		require.Empty(t, d.(*fakeDownloader).calls)
	}
}

func TestDownloadDispatchesByPlatform(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "7.43 复制打开抖音，看看【作品】 https://v.douyin.com/iRNBho5m/ ", "mine.mp4")
	require.NoError(t, err)

	require.Equal(t, []downloadCall{{link: "https://v.douyin.com/iRNBho5m/", outputName: "mine.mp4"}}, e.downloader(platform.Douyin).calls)
	require.Empty(t, e.downloader(platform.Bilibili).calls)
	require.Equal(t, 1, e.setupCalls)
}

func TestDownloadSubcommand(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "download", "https://b23.tv/AbC123x")
	require.NoError(t, err)
	require.Equal(t, []downloadCall{{link: "https://b23.tv/AbC123x"}}, e.downloader(platform.Bilibili).calls)
}

func TestDownloadForwardsToTelegram(t *testing.T) {
	e := newEnv(t)

	forwarder := &fakeForwarder{}
	e.services.Forwarder = forwarder

	require.NoError(t, e.run(t, "https://www.xiaohongshu.com/explore/abc123"))
	require.Equal(t, []string{"/out/xiaohongshu.mp4"}, forwarder.paths)
	require.Equal(t, []string{"标题"}, forwarder.captions)
}

func TestDownloadError(t *testing.T) {
	e := newEnv(t)
	e.downloader(platform.Douyin).err = downloaders.ErrCaptureTimeout

	forwarder := &fakeForwarder{}
	e.services.Forwarder = forwarder

	err := e.run(t, "https://www.douyin.com/video/7000000000000000001")
	require.ErrorIs(t, err, downloaders.ErrCaptureTimeout)
	require.Empty(t, forwarder.paths)
}

func TestDownloadWithoutArgs(t *testing.T) {
	e := newEnv(t)

	err := e.run(t)
	requireExitCode(t, err, 1)
	require.Contains(t, e.out.String(), "用法:")
}

func TestLoginSavesCookies(t *testing.T) {
	e := newEnv(t)

	login := &fakeLogin{result: browser.LoginResult{
		Cookies: []cookies.Cookie{{Name: "SESSDATA", Value: "s", Expires: -1}, {Name: "bili_jct", Value: "j", Expires: -1}},
		Reason:  browser.LoginSignal,
	}}
	e.services.Login = login

	signal := filepath.Join(t.TempDir(), "done")

	err := e.run(t, "login", "--signal-file", signal, "bilibili")
	require.NoError(t, err)

	require.Equal(t, "https://passport.bilibili.com/login", login.url)
	require.Equal(t, signal, login.signalFile)
	require.Contains(t, e.out.String(), "收到确认信号")
	require.Contains(t, e.out.String(), "bilibili 登录成功")

	store := cookies.NewStore(e.cfg.Application.CookieDir)
	require.FileExists(t, store.Path(platform.Bilibili))
	require.Len(t, store.Load(platform.MustByID(platform.Bilibili)), 2)

	// после входа check-login проходит
	e.out.Reset()
	require.NoError(t, e.run(t, "check-login", "bilibili"))
	require.Equal(t, "LOGIN_OK:bilibili\n", e.out.String())
}

func TestLoginWithoutCookies(t *testing.T) {
	e := newEnv(t)
	e.services.Login = &fakeLogin{result: browser.LoginResult{Reason: browser.LoginClosed}}

	err := e.run(t, "login", "douyin")
	require.NoError(t, err)
	require.Contains(t, e.out.String(), "未获取到 cookie")

	_, err = os.Stat(cookies.NewStore(e.cfg.Application.CookieDir).Path(platform.Douyin))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoginUnknownPlatform(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "login", "weibo")
	requireExitCode(t, err, 1)
	require.Zero(t, e.setupCalls)
}

func TestDownloaderMissing(t *testing.T) {
	e := newEnv(t)
	e.services.Downloaders = nil

	err := e.run(t, "https://b23.tv/AbC123x")
	require.True(t, errors.Is(err, downloaders.ErrUnrecognized))
}
