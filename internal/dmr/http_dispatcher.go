package dmr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// максимальный размер ответа management-эндпоинта
const maxResponseSize = 32 << 20

// HTTPDispatcher Диспетчер, отправляющий операции на HTTP management API (POST JSON).
type HTTPDispatcher struct {
	dispatcher
	url      string
	user     string
	password string
	client   *http.Client
}

// NewHTTPDispatcher Конструктор HTTP диспетчера.
func NewHTTPDispatcher(url, user, password string, timeout time.Duration) *HTTPDispatcher {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	d := &HTTPDispatcher{
		url:      url,
		user:     user,
		password: password,
		client:   client,
	}
	d.dispatcher = dispatcher{endpoint: url, post: d.postJSON}

	return d
}

func (d *HTTPDispatcher) postJSON(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if d.user != "" {
		req.SetBasicAuth(d.user, d.password)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	// неуспешные операции приходят с кодом 500 и телом с outcome=failed
	switch resp.StatusCode {
	case http.StatusOK, http.StatusInternalServerError:
		return body, nil
	default:
		return nil, fmt.Errorf("неожиданный HTTP статус %d", resp.StatusCode)
	}
}
