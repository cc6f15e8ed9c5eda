package bilibili

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBestStream(t *testing.T) {
	videos := []Stream{
		{ID: 32, Bandwidth: 500, BaseURL: "v500"},
		{ID: 80, Bandwidth: 1200, BaseURL: "v1200"},
		{ID: 64, Bandwidth: 900, BaseURL: "v900"},
	}
	audios := []Stream{
		{ID: 30216, Bandwidth: 128, BaseURL: "a128"},
		{ID: 30280, Bandwidth: 256, BaseURL: "a256"},
	}

	v, ok := Best(videos)
	require.True(t, ok)
	require.Equal(t, int64(1200), v.Bandwidth)

	a, ok := Best(audios)
	require.True(t, ok)
	require.Equal(t, int64(256), a.Bandwidth)

	// порядок входа не важен и не меняется
	reversed := []Stream{videos[2], videos[1], videos[0]}
	v, _ = Best(reversed)
	require.Equal(t, "v1200", v.BaseURL)
	require.Equal(t, "v900", reversed[0].BaseURL)

	_, ok = Best(nil)
	require.False(t, ok)
}

func TestBestStreamTieKeepsFirst(t *testing.T) {
	v, _ := Best([]Stream{{Bandwidth: 10, Codecs: "avc1"}, {Bandwidth: 10, Codecs: "hev1"}})
	require.Equal(t, "avc1", v.Codecs)
}

func TestParsePayload(t *testing.T) {
	raw := `{"playinfo":{"code":0,"message":"0","data":{"dash":{"duration":10,"video":[{"id":80,"baseUrl":"https://upos/v.m4s","bandwidth":1200,"codecs":"avc1.640032","width":1920,"height":1080,"backupUrl":["x"]}],"audio":[{"id":30280,"baseUrl":"https://upos/a.m4s","bandwidth":256,"codecs":"mp4a.40.2"}]}}},"title":"标题_哔哩哔哩_bilibili"}`

	info, title, err := ParsePayload(raw)
	require.NoError(t, err)
	require.Equal(t, "标题_哔哩哔哩_bilibili", title)
	require.NotNil(t, info.Data.Dash)
	require.Len(t, info.Data.Dash.Video, 1)
	require.Equal(t, Stream{ID: 80, BaseURL: "https://upos/v.m4s", Bandwidth: 1200, Codecs: "avc1.640032", Width: 1920, Height: 1080}, info.Data.Dash.Video[0])
	require.Equal(t, "https://upos/a.m4s", info.Data.Dash.Audio[0].BaseURL)
}

func TestParsePayloadWithoutPlayInfo(t *testing.T) {
	info, title, err := ParsePayload(`{"playinfo":null,"title":"出错啦"}`)
	require.NoError(t, err)
	require.Nil(t, info)
	require.Equal(t, "出错啦", title)

	_, _, err = ParsePayload("")
	require.Error(t, err)
}

func TestParsePayloadDurl(t *testing.T) {
	info, _, err := ParsePayload(`{"playinfo":{"code":0,"data":{"durl":[{"order":1,"url":"https://upos/1.flv","size":100},{"order":2,"url":"https://upos/2.flv","size":200}]}},"title":"t"}`)
	require.NoError(t, err)
	require.Nil(t, info.Data.Dash)
	require.Len(t, info.Data.Durl, 2)
	require.Equal(t, "https://upos/1.flv", info.Data.Durl[0].URL)
}

func TestExtractPlayInfo(t *testing.T) {
	html := `<html><head><title>t</title>
<script>window.__INITIAL_STATE__={"aid":1};</script>
<script>window.__playinfo__={"code":0,"data":{"dash":{"video":[{"baseUrl":"https://upos/v","bandwidth":5}],"audio":[{"baseUrl":"https://upos/a","bandwidth":1}]}}}</script>
</head><body></body></html>`

	info, err := ExtractPlayInfo(html)
	require.NoError(t, err)
	require.Equal(t, "https://upos/v", info.Data.Dash.Video[0].BaseURL)

	_, err = ExtractPlayInfo("<html><script>var a = 1;</script></html>")
	require.ErrorIs(t, err, ErrNoPlayInfo)
}
