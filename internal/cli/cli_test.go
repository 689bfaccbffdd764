package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/dmr/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

const (
	standaloneRoot = `{"process-type":"Server","product-name":"WildFly","product-version":"30.0.0.Final"}`
	domainRoot     = `{"process-type":"Host Controller","product-name":"WildFly","product-version":"30.0.0.Final","local-host-name":"master"}`
)

func node(t *testing.T, s string) dmr.ModelNode {
	t.Helper()
	n, err := dmr.ParseModelNode([]byte(s))
	require.NoError(t, err)
	return n
}

func run(t *testing.T, d dmr.Dispatcher, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(func(cfg *config.Config) (dmr.Dispatcher, error) {
		return d, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// TestTopologyCommand Проверяет вывод топологии.
func TestTopologyCommand(t *testing.T) {
	logger.InitLogger("error", "stdout")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("standalone-сервер", func(t *testing.T) {
		d := mocks.NewMockDispatcher(ctrl)
		d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(node(t, standaloneRoot), nil)

		out, err := run(t, d, "topology")

		require.NoError(t, err)
		assert.Contains(t, out, "Standalone server")
	})

	t.Run("ошибка чтения окружения", func(t *testing.T) {
		d := mocks.NewMockDispatcher(ctrl)
		d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(dmr.ModelNode{}, errors.New("connection refused"))

		_, err := run(t, d, "topology")

		assert.ErrorContains(t, err, "connection refused")
	})
}

// TestServersCommand Проверяет вывод запущенных серверов профиля.
func TestServersCommand(t *testing.T) {
	logger.InitLogger("error", "stdout")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := mocks.NewMockDispatcher(ctrl)
	gomock.InOrder(
		d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(node(t, domainRoot), nil),
		d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(node(t, `[
			{"address":[{"host":"master"},{"server":"server-one"}],"outcome":"success",
			 "result":{"name":"server-one","server-group":"main-server-group","server-state":"running","suspend-state":"RUNNING"}},
			{"address":[{"host":"slave"},{"server":"server-two"}],"outcome":"failed","failure-description":"timeout"}
		]`), nil),
	)

	out, err := run(t, d, "servers", "full", "-o", FormatCSV)

	require.NoError(t, err)
	assert.Contains(t, out, "master,server-one,main-server-group")
	assert.NotContains(t, out, "server-two")
}

// TestSubsystemsCommand Проверяет вывод подсистем.
func TestSubsystemsCommand(t *testing.T) {
	logger.InitLogger("error", "stdout")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("standalone-сервер", func(t *testing.T) {
		d := mocks.NewMockDispatcher(ctrl)
		gomock.InOrder(
			d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(node(t, standaloneRoot), nil),
			d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(node(t, `["logging","my-extension"]`), nil),
		)

		out, err := run(t, d, "subsystems", "-o", FormatMarkdown)

		require.NoError(t, err)
		assert.Contains(t, out, "| logging | Logging |")
		assert.Contains(t, out, "my-extension")
	})

	t.Run("в домене без профиля", func(t *testing.T) {
		d := mocks.NewMockDispatcher(ctrl)
		d.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(node(t, domainRoot), nil)

		_, err := run(t, d, "subsystems")

		assert.ErrorContains(t, err, "профиль")
	})
}

// TestUnknownFormat Неизвестный формат отклоняется до обращения к серверу.
func TestUnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := run(t, mocks.NewMockDispatcher(ctrl), "topology", "-o", "xml")

	assert.ErrorContains(t, err, "xml")
}
