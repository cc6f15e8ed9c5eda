//go:generate easyjson cookie.go
package cookies

// Cookie запись в формате экспорта cookie браузера.
// Expires в секундах unix, -1 у сессионных cookie.
//
//easyjson:json
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite,omitempty"`
}

//easyjson:json
type Jar []Cookie
