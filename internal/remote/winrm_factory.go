package remote

import "github.com/trsv-dev/simple-topology-console/internal/config"

// WinRMClientFactory Фабрика WinRM клиентов.
type WinRMClientFactory struct {
	winRMConfig *config.WinRMConfig
}

// NewWinRMClientFactory Конструктор фабрики.
func NewWinRMClientFactory(winRMConfig *config.WinRMConfig) *WinRMClientFactory {
	return &WinRMClientFactory{
		winRMConfig: winRMConfig,
	}
}

// CreateClient Создаёт WinRMClient для указанных в сигнатуре параметров.
func (f *WinRMClientFactory) CreateClient(address, username, password string) (Client, error) {
	client, err := NewWinRMClient(address, f.winRMConfig.Port, username, password,
		f.winRMConfig.UseHTTPS, f.winRMConfig.InsecureHTTPS, f.winRMConfig.Timeout)
	if err != nil {
		return nil, err
	}

	return client, nil
}
