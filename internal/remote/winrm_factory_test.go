package remote_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/remote"
)

func testWinRMConfig(port string) *config.WinRMConfig {
	return &config.WinRMConfig{Port: port, Timeout: time.Second}
}

// TestWinRMClientFactoryImplementsInterface Проверяет имплементацию интерфейса.
func TestWinRMClientFactoryImplementsInterface(t *testing.T) {
	factory := remote.NewWinRMClientFactory(testWinRMConfig("5985"))

	assert.Implements(t, (*remote.ClientFactory)(nil), factory)
}

// TestCreateClientSuccess Клиент создаётся без обращения к сети.
func TestCreateClientSuccess(t *testing.T) {
	factory := remote.NewWinRMClientFactory(testWinRMConfig("5985"))

	client, err := factory.CreateClient("192.168.1.100", "admin", "password")

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.IsType(t, &remote.WinRMClient{}, client)
}

// TestCreateClientBadPort Некорректный порт в конфигурации.
func TestCreateClientBadPort(t *testing.T) {
	factory := remote.NewWinRMClientFactory(testWinRMConfig("not-a-port"))

	client, err := factory.CreateClient("192.168.1.100", "admin", "password")

	assert.Error(t, err)
	assert.Nil(t, client)
}
