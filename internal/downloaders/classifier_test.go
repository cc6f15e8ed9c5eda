package downloaders

import (
	"testing"

	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		platform platform.ID
		url      string
	}{
		{
			"douyin short in share text",
			"7.43 复制打开抖音，看看【作者的作品】# 日常 https://v.douyin.com/iRNBho6u/ a@b.NT 08/12",
			platform.Douyin, "https://v.douyin.com/iRNBho6u/",
		},
		{
			"douyin full",
			"https://www.douyin.com/video/7123456789012345678",
			platform.Douyin, "https://www.douyin.com/video/7123456789012345678",
		},
		{
			"douyin full with modal id",
			"https://www.douyin.com/video/7123456789012345678?modal_id=7123456789012345678",
			platform.Douyin, "https://www.douyin.com/video/7123456789012345678",
		},
		{
			"douyin modal",
			"https://www.douyin.com/jingxuan?modal_id=7300000000000000001",
			platform.Douyin, "https://www.douyin.com/video/7300000000000000001",
		},
		{
			"xiaohongshu explore",
			`看看这篇笔记 https://www.xiaohongshu.com/explore/64f1a2b3c4d5e6f7a8b9c0d1?xsec_token=AB" end`,
			platform.Xiaohongshu, "https://www.xiaohongshu.com/explore/64f1a2b3c4d5e6f7a8b9c0d1?xsec_token=AB",
		},
		{
			"xiaohongshu discovery",
			"https://www.xiaohongshu.com/discovery/item/64f1a2b3c4d5e6f7a8b9c0d1",
			platform.Xiaohongshu, "https://www.xiaohongshu.com/discovery/item/64f1a2b3c4d5e6f7a8b9c0d1",
		},
		{
			"xiaohongshu short",
			"复制本条信息 http://xhslink.com/a/Bx9Kz1，打开小红书",
			platform.Xiaohongshu, "http://xhslink.com/a/Bx9Kz1",
		},
		{
			"bilibili full",
			"https://www.bilibili.com/video/BV1xx411c7mD/?spm_id_from=333 next",
			platform.Bilibili, "https://www.bilibili.com/video/BV1xx411c7mD/?spm_id_from=333",
		},
		{
			"bilibili short",
			"【标题】 https://b23.tv/AbC123x",
			platform.Bilibili, "https://b23.tv/AbC123x",
		},
		{
			"first rule wins",
			"https://b23.tv/AbC123x https://v.douyin.com/iRNBho6u/",
			platform.Douyin, "https://v.douyin.com/iRNBho6u/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := Classify(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.platform, link.Platform)
			require.Equal(t, tt.url, link.URL)
		})
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	for _, input := range []string{"hello world", "", "https://www.youtube.com/watch?v=x", "https://www.bilibili.com/"} {
		_, err := Classify(input)
		require.ErrorIs(t, err, ErrUnrecognized, input)
	}
}
