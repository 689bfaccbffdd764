package worker

import (
	"context"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/netutils"
)

// EndpointStatusWorker Проверяет доступность management endpoint'а: сначала порт,
// затем, если порт закрыт, хост по ICMP.
func EndpointStatusWorker(ctx context.Context, checker netutils.Checker, address, port string, timeout time.Duration) chan models.EndpointStatus {
	statusCh := make(chan models.EndpointStatus, 1)
	defer close(statusCh)

	status := models.EndpointStatus{Address: address, Port: port}

	select {
	case <-ctx.Done():
		logger.Log.Error("Проверка management endpoint'а прервана по контексту")
		status.Status = models.EndpointUnreachable
	default:
		switch {
		case checker.CheckTCP(ctx, address, port, timeout):
			status.Status = models.EndpointOK
		case checker.CheckICMP(ctx, address, timeout):
			logger.Log.Warn("Порт management endpoint'а закрыт, хост отвечает",
				logger.String("address", address), logger.String("port", port))
			status.Status = models.EndpointDegraded
		default:
			logger.Log.Warn("Management endpoint недоступен",
				logger.String("address", address), logger.String("port", port))
			status.Status = models.EndpointUnreachable
		}
	}

	statusCh <- status

	return statusCh
}
