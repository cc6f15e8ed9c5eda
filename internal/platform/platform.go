package platform

import "strings"

type ID string

const (
	Bilibili    ID = "bilibili"
	Douyin      ID = "douyin"
	Xiaohongshu ID = "xiaohongshu"
)

// Platform описывает поведение конкретной площадки: страница входа, ключевые cookie, заголовки.
type Platform struct {
	ID   ID
	Name string

	// Страница, открываемая в `login <platform>`
	LoginURL string

	// Имена cookie, по которым определяется валидность сессии
	KeyCookies []string

	// Без валидной сессии ссылки на воспроизведение недоступны (только bilibili)
	LoginRequired bool

	Referer string
	Origin  string
}

func (p Platform) String() string {
	return string(p.ID)
}

// Headers дополнительные заголовки для CDN площадки
func (p Platform) Headers() map[string]string {
	if p.Origin == "" {
		return nil
	}

	return map[string]string{"Origin": p.Origin}
}

func All() []Platform {
	return []Platform{
		{
			ID:            Bilibili,
			Name:          "B站",
			LoginURL:      "https://passport.bilibili.com/login",
			KeyCookies:    []string{"SESSDATA", "bili_jct"},
			LoginRequired: true,
			Referer:       "https://www.bilibili.com/",
			Origin:        "https://www.bilibili.com",
		},
		{
			ID:         Douyin,
			Name:       "抖音",
			LoginURL:   "https://www.douyin.com/",
			KeyCookies: []string{"sessionid", "sessionid_ss"},
			Referer:    "https://www.douyin.com/",
		},
		{
			ID:         Xiaohongshu,
			Name:       "小红书",
			LoginURL:   "https://www.xiaohongshu.com/",
			KeyCookies: []string{"web_session"},
			Referer:    "https://www.xiaohongshu.com/",
		},
	}
}

func ByID(id string) (Platform, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, p := range All() {
		if string(p.ID) == id {
			return p, true
		}
	}

	return Platform{}, false
}

// MustByID для внутренних вызовов с заведомо известным ID
func MustByID(id ID) Platform {
	p, ok := ByID(string(id))
	if !ok {
		panic("unknown platform " + string(id))
	}

	return p
}

func IDs() []string {
	all := All()

	ids := make([]string, 0, len(all))
	for _, p := range all {
		ids = append(ids, string(p.ID))
	}

	return ids
}
