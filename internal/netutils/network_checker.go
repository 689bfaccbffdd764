package netutils

import (
	"context"
	"net"
	"time"

	"github.com/prometheus-community/pro-bing"
)

const (
	DefaultHostTimeout = 2 * time.Second
	DefaultPingCount   = 3
)

// NetworkChecker Проверка доступности management endpoint'а и хоста, на котором он запущен.
type NetworkChecker struct {
	// privileged true - raw ICMP-сокет, false - UDP ping (Linux без CAP_NET_RAW)
	privileged bool
	pingCount  int
}

// NewNetworkChecker Конструктор. Консоль обычно работает без root, поэтому
// привилегированный ping включается явно.
func NewNetworkChecker(privilegedPing bool) *NetworkChecker {
	return &NetworkChecker{privileged: privilegedPing, pingCount: DefaultPingCount}
}

// CheckTCP Порт management endpoint'а принимает соединения.
// Если timeout <= 0, используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckTCP(ctx context.Context, address string, port string, timeout time.Duration) bool {
	dialer := net.Dialer{Timeout: orDefault(timeout)}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, port))
	if err != nil {
		return false
	}
	_ = conn.Close()

	return true
}

// CheckICMP Хост отвечает хотя бы на один из pingCount запросов.
func (nc *NetworkChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}

	pinger.SetPrivileged(nc.privileged)
	pinger.Count = nc.pingCount
	pinger.Timeout = orDefault(timeout)

	received := make(chan bool, 1)
	go func() {
		defer close(received)

		if runErr := pinger.Run(); runErr != nil {
			received <- false
			return
		}
		received <- pinger.Statistics().PacketsRecv > 0
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		return false
	case ok := <-received:
		return ok
	}
}

func orDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultHostTimeout
	}
	return timeout
}
