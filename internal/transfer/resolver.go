package transfer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/StounhandJ/video_download/internal/utils"
)

// Resolver раскрывает короткие ссылки, следуя редиректам
type Resolver struct {
	client    *http.Client
	userAgent string
}

func NewResolver(t Transport) (*Resolver, error) {
	client, err := t.HTTPClient()
	if err != nil {
		return nil, err
	}

	return &Resolver{client: client, userAgent: t.userAgent()}, nil
}

// Resolve возвращает конечный URL после всех редиректов. Тело ответа не читается.
func (r *Resolver) Resolve(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", link, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	final := resp.Request.URL.String()
	utils.Log.Debugf("Редирект %s -> %s", link, final)

	return final, nil
}
