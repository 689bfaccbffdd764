package di_containers

import (
	"fmt"

	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/remote"
)

// NewDispatcher Диспетчер management-операций для транспорта из конфигурации.
func NewDispatcher(srvConfig *config.Config) (dmr.Dispatcher, error) {
	switch srvConfig.Transport {
	case config.TransportHTTP, "":
		return dmr.NewHTTPDispatcher(srvConfig.ManagementURL, srvConfig.ManagementUser,
			srvConfig.ManagementPassword, srvConfig.ManagementTimeout), nil
	case config.TransportWinRM:
		winRMConfig := config.NewWinRMConfig(srvConfig)
		if err := winRMConfig.Validate(); err != nil {
			return nil, err
		}
		factory := remote.NewWinRMClientFactory(winRMConfig)
		return dmr.NewWinRMDispatcher(factory, winRMConfig.Host, winRMConfig.User, winRMConfig.Password,
			srvConfig.ManagementURL, srvConfig.ManagementUser, srvConfig.ManagementPassword), nil
	default:
		return nil, fmt.Errorf("неизвестный транспорт `%s`", srvConfig.Transport)
	}
}
