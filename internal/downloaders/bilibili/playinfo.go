//go:generate easyjson playinfo.go
package bilibili

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	easyjson "github.com/mailru/easyjson"
)

const playInfoPrefix = "window.__playinfo__="

// Скрипт всегда возвращает строку, даже если __playinfo__ нет
const playInfoScript = `JSON.stringify({playinfo: window.__playinfo__ || null, title: document.title})`

var ErrNoPlayInfo = errors.New("window.__playinfo__ not found")

//easyjson:json
type payload struct {
	PlayInfo *PlayInfo `json:"playinfo"`
	Title    string    `json:"title"`
}

//easyjson:json
type PlayInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Dash *Dash  `json:"dash"`
		Durl []Durl `json:"durl"`
	} `json:"data"`
}

type Dash struct {
	Video []Stream `json:"video"`
	Audio []Stream `json:"audio"`
}

type Stream struct {
	ID        int    `json:"id"`
	BaseURL   string `json:"baseUrl"`
	Bandwidth int64  `json:"bandwidth"`
	Codecs    string `json:"codecs"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type Durl struct {
	Order int    `json:"order"`
	URL   string `json:"url"`
	Size  int64  `json:"size"`
}

// Best поток с наибольшим bandwidth, при равенстве первый по порядку
func Best(streams []Stream) (Stream, bool) {
	if len(streams) == 0 {
		return Stream{}, false
	}

	sorted := slices.Clone(streams)
	slices.SortStableFunc(sorted, func(a, b Stream) int {
		return cmp.Compare(b.Bandwidth, a.Bandwidth)
	})

	return sorted[0], true
}

// ParsePayload разбирает результат playInfoScript
func ParsePayload(raw string) (*PlayInfo, string, error) {
	var p payload
	if err := easyjson.Unmarshal([]byte(raw), &p); err != nil {
		return nil, "", err
	}

	return p.PlayInfo, p.Title, nil
}

// ExtractPlayInfo ищет встроенный скрипт window.__playinfo__= в HTML страницы
func ExtractPlayInfo(html string) (*PlayInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var raw string

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(text, playInfoPrefix) {
			return true
		}

		raw = strings.TrimSuffix(strings.TrimPrefix(text, playInfoPrefix), ";")

		return false
	})

	if raw == "" {
		return nil, ErrNoPlayInfo
	}

	var info PlayInfo
	if err = easyjson.Unmarshal([]byte(raw), &info); err != nil {
		return nil, err
	}

	return &info, nil
}
