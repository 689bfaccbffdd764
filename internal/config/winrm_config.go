package config

import (
	"fmt"
	"strconv"
	"time"
)

// WinRMConfig Доступ по WinRM к Windows-хосту, на котором запущен management endpoint.
type WinRMConfig struct {
	Host          string
	User          string
	Password      string
	Port          string
	UseHTTPS      bool
	InsecureHTTPS bool
	// Timeout одного вызова CLI на удалённом хосте
	Timeout time.Duration
}

// NewWinRMConfig Параметры WinRM из конфигурации консоли. Таймаут совпадает с таймаутом
// management-операций.
func NewWinRMConfig(srvConfig *Config) *WinRMConfig {
	return &WinRMConfig{
		Host:          srvConfig.WinRMHost,
		User:          srvConfig.WinRMUser,
		Password:      srvConfig.WinRMPassword,
		Port:          srvConfig.WinRMPort,
		UseHTTPS:      srvConfig.WinRMUseHTTPS,
		InsecureHTTPS: srvConfig.WinRMInsecureForHTTPS,
		Timeout:       srvConfig.ManagementTimeout,
	}
}

// Validate Хост обязателен, порт должен быть числом.
func (c *WinRMConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("для транспорта %s не указан WinRM-хост", TransportWinRM)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("некорректный порт WinRM `%s`: %w", c.Port, err)
	}
	return nil
}
