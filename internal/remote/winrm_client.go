package remote

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/masterzen/winrm"
)

// WinRMClient Структура WinRM клиента.
type WinRMClient struct {
	client   *winrm.Client
	endpoint *winrm.Endpoint
}

// NewWinRMClient Конструктор, возвращающий новый WinRM клиент с нужными настройками.
func NewWinRMClient(addr, port, user, password string, useHTTPS, insecure bool, timeout time.Duration) (*WinRMClient, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("некорректный порт WinRM %q: %w", port, err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	endpoint := &winrm.Endpoint{
		Host:     addr,
		Port:     p,
		HTTPS:    useHTTPS,
		Insecure: insecure,
		Timeout:  timeout,
	}

	newClient, err := winrm.NewClient(endpoint, user, password)
	if err != nil {
		return nil, fmt.Errorf("невозможно создать клиент WinRM: %w", err)
	}

	return &WinRMClient{
		client:   newClient,
		endpoint: endpoint,
	}, nil
}

// RunCommand Выполнение PowerShell-скрипта на удаленном хосте.
func (c *WinRMClient) RunCommand(ctx context.Context, script string) (string, error) {
	var stdout, stderr bytes.Buffer

	exitCode, err := c.client.RunWithContext(ctx, winrm.Powershell(script), &stdout, &stderr)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения команды: %w; stderr: %s", err, stderr.String())
	}

	if exitCode != 0 {
		return "", fmt.Errorf("команда завершилась с кодом %d; stderr: %s", exitCode, stderr.String())
	}

	return stdout.String(), nil
}
