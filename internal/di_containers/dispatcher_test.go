package di_containers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
)

// TestNewDispatcher Проверяет выбор диспетчера по транспорту.
func TestNewDispatcher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		want    any
		wantErr bool
	}{
		{
			name: "http",
			cfg:  &config.Config{Transport: config.TransportHTTP, ManagementURL: "http://127.0.0.1:9990/management", ManagementTimeout: time.Second},
			want: &dmr.HTTPDispatcher{},
		},
		{
			name: "winrm",
			cfg:  &config.Config{Transport: config.TransportWinRM, WinRMHost: "10.0.0.5", WinRMPort: "5985"},
			want: &dmr.WinRMDispatcher{},
		},
		{
			name:    "winrm без хоста",
			cfg:     &config.Config{Transport: config.TransportWinRM},
			wantErr: true,
		},
		{
			name:    "winrm с нечисловым портом",
			cfg:     &config.Config{Transport: config.TransportWinRM, WinRMHost: "10.0.0.5", WinRMPort: "winrm"},
			wantErr: true,
		},
		{
			name:    "неизвестный транспорт",
			cfg:     &config.Config{Transport: "ssh"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDispatcher(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, d)
		})
	}
}
