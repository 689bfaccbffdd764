package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
)

// TestFromRootResource Разбор корневого ресурса для разных режимов и сборок.
func TestFromRootResource(t *testing.T) {
	tests := []struct {
		name           string
		root           string
		wantStandalone bool
		wantCommunity  bool
		wantDC         string
	}{
		{
			name:           "standalone WildFly",
			root:           `{"process-type":"Server","product-name":"WildFly Full","product-version":"30.0.0.Final","management-major-version":22,"management-minor-version":0}`,
			wantStandalone: true,
			wantCommunity:  true,
		},
		{
			name:          "domain EAP",
			root:          `{"process-type":"Host Controller","product-name":"JBoss EAP","local-host-name":"master"}`,
			wantCommunity: false,
			wantDC:        "master",
		},
		{
			name:           "пустой ресурс",
			root:           `{}`,
			wantStandalone: true,
			wantCommunity:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := dmr.ParseModelNode([]byte(tt.root))
			require.NoError(t, err)

			env := FromRootResource(node)

			assert.Equal(t, tt.wantStandalone, env.IsStandalone())
			assert.Equal(t, tt.wantCommunity, env.IsCommunity())
			assert.Equal(t, tt.wantDC, env.DomainController)
		})
	}
}

// TestManagementVersion Версия в виде major.minor.
func TestManagementVersion(t *testing.T) {
	env := &Environment{ManagementMajorVersion: 22, ManagementMinorVersion: 1}
	assert.Equal(t, "22.1", env.ManagementVersion())
}

// TestNilEnvironment Неинициализированное окружение считается standalone community.
func TestNilEnvironment(t *testing.T) {
	var env *Environment
	assert.True(t, env.IsStandalone())
	assert.True(t, env.IsCommunity())
}
