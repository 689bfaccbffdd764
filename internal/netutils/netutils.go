package netutils

import (
	"fmt"
	"net"
	"net/url"
)

// Endpoint Хост и порт из URL management endpoint'а. Если порт не указан,
// берётся порт схемы (80 для http, 443 для https).
func Endpoint(rawURL string) (host string, port string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("некорректный URL `%s`: %w", rawURL, err)
	}

	host = u.Hostname()
	if host == "" {
		return "", "", fmt.Errorf("в URL `%s` нет хоста", rawURL)
	}

	port = u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		default:
			return "", "", fmt.Errorf("в URL `%s` нет порта", rawURL)
		}
	}

	// net.JoinHostPort корректно обрабатывает IPv6
	if _, _, err = net.SplitHostPort(net.JoinHostPort(host, port)); err != nil {
		return "", "", err
	}

	return host, port, nil
}
