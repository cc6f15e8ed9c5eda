package transfer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpproxy"
)

// Настольный Chrome, как и в браузере площадок
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Transport общие сетевые настройки для resolver, fetcher и браузера
type Transport struct {
	UserAgent   string
	ProxyURL    string
	InsecureTLS bool
	Timeout     time.Duration
}

func (t Transport) userAgent() string {
	if t.UserAgent == "" {
		return DefaultUserAgent
	}

	return t.UserAgent
}

func (t Transport) tlsConfig() *tls.Config {
	if !t.InsecureTLS {
		return nil
	}

	return &tls.Config{InsecureSkipVerify: true} // nolint:gosec
}

// HTTPClient клиент net/http для коротких запросов
func (t Transport) HTTPClient() (*http.Client, error) {
	client := &http.Client{Timeout: t.Timeout}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = t.tlsConfig()

	if t.ProxyURL != "" {
		proxyURL, err := url.Parse(t.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", t.ProxyURL, err)
		}

		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client.Transport = transport

	return client, nil
}

// FastClient клиент fasthttp с потоковым чтением тела ответа
func (t Transport) FastClient() (*fasthttp.Client, error) {
	client := &fasthttp.Client{
		StreamResponseBody:       true,
		TLSConfig:                t.tlsConfig(),
		NoDefaultUserAgentHeader: true,
	}

	if t.ProxyURL != "" {
		proxyURL, err := url.Parse(t.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", t.ProxyURL, err)
		}

		switch proxyURL.Scheme {
		case "socks5", "socks5h":
			client.Dial = fasthttpproxy.FasthttpSocksDialer(t.ProxyURL)
		default:
			addr := proxyURL.Host
			if proxyURL.User != nil {
				addr = proxyURL.User.String() + "@" + addr
			}

			client.Dial = fasthttpproxy.FasthttpHTTPDialerTimeout(addr, t.Timeout)
		}
	}

	if t.Timeout > 0 {
		client.Dial = t.idleDial(client.Dial)
	}

	return client, nil
}

// idleDial обрывает соединение, если сервер молчит дольше Timeout.
// ReadTimeout клиента fasthttp ограничил бы всё скачивание целиком.
func (t Transport) idleDial(dial fasthttp.DialFunc) fasthttp.DialFunc {
	if dial == nil {
		dial = func(addr string) (net.Conn, error) {
			return fasthttp.DialTimeout(addr, t.Timeout)
		}
	}

	return func(addr string) (net.Conn, error) {
		conn, err := dial(addr)
		if err != nil {
			return nil, err
		}

		return &idleConn{Conn: conn, timeout: t.Timeout}, nil
	}
}

type idleConn struct {
	net.Conn
	timeout time.Duration
}

func (c *idleConn) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}

	return c.Conn.Read(b)
}
