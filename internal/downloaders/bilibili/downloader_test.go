package bilibili

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/StounhandJ/video_download/internal/browser"
	"github.com/StounhandJ/video_download/internal/cookies"
	"github.com/StounhandJ/video_download/internal/downloaders"
	"github.com/StounhandJ/video_download/internal/downloaders/downloaderstest"
	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/stretchr/testify/require"
)

const dashPayload = `{"playinfo":{"code":0,"data":{"dash":{"video":[{"id":80,"baseUrl":"https://upos.test/v.m4s","bandwidth":1200,"codecs":"avc1","width":1920,"height":1080}],"audio":[{"id":30280,"baseUrl":"https://upos.test/a.m4s","bandwidth":256,"codecs":"mp4a.40.2"}]}}},"title":"我的 #视频 标题_哔哩哔哩_bilibili"}`

type env struct {
	out      bytes.Buffer
	outDir   string
	scratch  string
	browser  *downloaderstest.Browser
	resolver *downloaderstest.Resolver
	fetcher  *downloaderstest.Fetcher
	remuxer  *downloaderstest.Remuxer
}

func newEnv(t *testing.T) *env {
	t.Helper()

	return &env{
		outDir:  t.TempDir(),
		scratch: t.TempDir(),
		browser: &downloaderstest.Browser{Eval: browser.Evaluation{Value: dashPayload, Title: "ignored"}},
		resolver: &downloaderstest.Resolver{Redirects: map[string]string{
			"https://b23.tv/AbC123x": "https://www.bilibili.com/video/BV1xxxxxxxxx?share_source=copy",
		}},
		fetcher: &downloaderstest.Fetcher{Bodies: map[string][]byte{
			"https://upos.test/v.m4s": []byte("VIDEO"),
			"https://upos.test/a.m4s": []byte("AUDIO"),
		}},
		remuxer: &downloaderstest.Remuxer{},
	}
}

func (e *env) deps() downloaders.Deps {
	return downloaderstest.Deps(e.outDir, e.scratch, &e.out, e.browser, e.resolver, e.fetcher, e.remuxer)
}

func TestDownloadDashFromShortLink(t *testing.T) {
	e := newEnv(t)

	video, err := New(e.deps()).Download(context.Background(), "https://b23.tv/AbC123x", "")
	require.NoError(t, err)

	require.Equal(t, []string{"https://b23.tv/AbC123x"}, e.resolver.Calls)
	require.Equal(t, []string{"https://www.bilibili.com/video/BV1xxxxxxxxx/"}, e.browser.Pages)

	want := filepath.Join(e.outDir, "我的_视频_标题.mp4")
	require.Equal(t, want, video.Path)
	require.Equal(t, "我的 #视频 标题", video.Title)
	require.Equal(t, int64(len("VIDEOAUDIO")), video.Size)

	got, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "VIDEOAUDIO", string(got))

	entries, err := os.ReadDir(e.outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "exactly one output file")

	// временные файлы и каталог удалены
	require.Len(t, e.remuxer.Inputs, 1)
	require.NoFileExists(t, e.remuxer.Inputs[0][0])
	require.NoFileExists(t, e.remuxer.Inputs[0][1])
	require.NoDirExists(t, filepath.Dir(e.remuxer.Inputs[0][0]))

	scratch, err := os.ReadDir(e.scratch)
	require.NoError(t, err)
	require.Empty(t, scratch)

	for _, call := range e.fetcher.Calls {
		require.Equal(t, "https://www.bilibili.com/", call.Referer)
		require.Equal(t, map[string]string{"Origin": "https://www.bilibili.com"}, call.Headers)
	}

	require.Contains(t, e.out.String(), "[5/5] ffmpeg 合并音视频...")
}

func TestDownloadSelectsBestStreams(t *testing.T) {
	e := newEnv(t)
	e.browser.Eval.Value = `{"playinfo":{"data":{"dash":{
		"video":[{"baseUrl":"v500","bandwidth":500},{"baseUrl":"v1200","bandwidth":1200},{"baseUrl":"v900","bandwidth":900}],
		"audio":[{"baseUrl":"a128","bandwidth":128},{"baseUrl":"a256","bandwidth":256}]}}},"title":"t"}`
	e.fetcher.Bodies = map[string][]byte{"v1200": []byte("v"), "a256": []byte("a")}

	_, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "")
	require.NoError(t, err)

	require.Empty(t, e.resolver.Calls)
	require.Len(t, e.fetcher.Calls, 2)
	require.Equal(t, "v1200", e.fetcher.Calls[0].Src)
	require.Equal(t, "a256", e.fetcher.Calls[1].Src)
}

func TestDownloadExplicitOutputName(t *testing.T) {
	e := newEnv(t)

	video, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "my clip.mp4")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(e.outDir, "my clip.mp4"), video.Path)
}

func TestDownloadRemuxFailureCleansScratch(t *testing.T) {
	e := newEnv(t)
	e.remuxer.Err = errors.New("exit status 1")

	_, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "")
	require.ErrorIs(t, err, downloaders.ErrRemux)

	scratch, err := os.ReadDir(e.scratch)
	require.NoError(t, err)
	require.Empty(t, scratch)
}

func TestDownloadRemuxFailureRemovesOutput(t *testing.T) {
	e := newEnv(t)
	e.remuxer.Err = errors.New("exit status 1")
	e.remuxer.Partial = true

	_, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "")
	require.ErrorIs(t, err, downloaders.ErrRemux)

	entries, err := os.ReadDir(e.outDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDownloadEmptyDashFallsBackToDurl(t *testing.T) {
	e := newEnv(t)
	e.browser.Eval.Value = `{"playinfo":{"data":{"dash":{},"durl":[{"url":"https://upos.test/1.flv"}]}},"title":"老视频_哔哩哔哩_bilibili"}`
	e.fetcher.Bodies = map[string][]byte{"https://upos.test/1.flv": []byte("FLV")}

	video, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1old", "")
	require.NoError(t, err)

	require.Equal(t, "老视频", video.Title)
	require.Equal(t, int64(3), video.Size)
	require.Empty(t, e.remuxer.Inputs)
}

func TestDownloadDurl(t *testing.T) {
	e := newEnv(t)
	e.browser.Eval.Value = `{"playinfo":{"data":{"durl":[{"url":"https://upos.test/1.flv"},{"url":"https://upos.test/2.flv"}]}},"title":"老视频_哔哩哔哩_bilibili"}`
	e.fetcher.Bodies = map[string][]byte{"https://upos.test/1.flv": []byte("FLV")}

	video, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1old", "")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(e.outDir, "老视频.mp4"), video.Path)
	require.Equal(t, int64(3), video.Size)
	require.Len(t, e.fetcher.Calls, 1)
	require.Empty(t, e.remuxer.Inputs)
}

func TestDownloadFallsBackToHTML(t *testing.T) {
	e := newEnv(t)
	e.browser.Eval = browser.Evaluation{
		Value: `{"playinfo":null,"title":""}`,
		Title: "页面_哔哩哔哩_bilibili",
		HTML:  `<html><script>window.__playinfo__={"data":{"durl":[{"url":"https://upos.test/1.flv"}]}}</script></html>`,
	}
	e.fetcher.Bodies = map[string][]byte{"https://upos.test/1.flv": []byte("FLV")}

	video, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1old", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(e.outDir, "页面.mp4"), video.Path)
}

func TestDownloadWithoutPlayInfo(t *testing.T) {
	e := newEnv(t)
	e.browser.Eval = browser.Evaluation{Value: `{"playinfo":null,"title":"x"}`}

	_, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "")
	require.ErrorIs(t, err, downloaders.ErrCaptureTimeout)
	require.Empty(t, e.fetcher.Calls)

	entries, err := os.ReadDir(e.outDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDownloadAccessGated(t *testing.T) {
	e := newEnv(t)
	e.browser.Eval = browser.Evaluation{Value: `{"playinfo":{"code":-404,"data":{}},"title":"x"}`}

	_, err := New(e.deps()).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "")
	require.ErrorIs(t, err, downloaders.ErrAccessGated)
}

func TestDownloadRedirectFailure(t *testing.T) {
	e := newEnv(t)
	e.resolver.Err = errors.New("dial tcp: no such host")

	_, err := New(e.deps()).Download(context.Background(), "https://b23.tv/AbC123x", "")
	require.ErrorIs(t, err, downloaders.ErrRedirect)
	require.Empty(t, e.browser.Pages)
}

func TestDownloadPassesStoredCookies(t *testing.T) {
	e := newEnv(t)

	deps := e.deps()
	jar := []cookies.Cookie{{Name: "SESSDATA", Value: "x", Expires: -1}}
	deps.Cookies = downloaderstest.Cookies{platform.Bilibili: jar}

	_, err := New(deps).Download(context.Background(), "https://www.bilibili.com/video/BV1xxxxxxxxx", "")
	require.NoError(t, err)
	require.Equal(t, [][]cookies.Cookie{jar}, e.browser.Cookies)
	require.Contains(t, e.out.String(), "已加载 bilibili 登录态 (1 cookies)")
}
