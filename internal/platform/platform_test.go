package platform_test

import (
	"testing"

	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	p, ok := platform.ByID(" Bilibili ")
	require.True(t, ok)
	require.Equal(t, platform.Bilibili, p.ID)
	require.True(t, p.LoginRequired)
	require.Equal(t, []string{"SESSDATA", "bili_jct"}, p.KeyCookies)

	_, ok = platform.ByID("youtube")
	require.False(t, ok)
}

func TestOnlyBilibiliRequiresLogin(t *testing.T) {
	for _, p := range platform.All() {
		require.Equal(t, p.ID == platform.Bilibili, p.LoginRequired, p.ID)
		require.NotEmpty(t, p.KeyCookies, p.ID)
	}
}

func TestHeaders(t *testing.T) {
	require.Equal(t, map[string]string{"Origin": "https://www.bilibili.com"}, platform.MustByID(platform.Bilibili).Headers())
	require.Nil(t, platform.MustByID(platform.Douyin).Headers())
}

func TestIDs(t *testing.T) {
	require.Equal(t, []string{"bilibili", "douyin", "xiaohongshu"}, platform.IDs())
}
