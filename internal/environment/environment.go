package environment

import (
	"fmt"
	"strings"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
)

// OperationMode Режим работы management-сервера.
type OperationMode string

const (
	Standalone OperationMode = "STANDALONE"
	Domain     OperationMode = "DOMAIN"
)

// Build Тип сборки продукта.
type Build string

const (
	Community Build = "community"
	Product   Build = "product"
)

// значение process-type у host controller'а
const hostControllerProcess = "Host Controller"

// Environment Сведения о management-сервере, прочитанные при старте консоли.
type Environment struct {
	OperationMode          OperationMode `json:"operation-mode"`
	Build                  Build         `json:"build"`
	ProductName            string        `json:"product-name"`
	ProductVersion         string        `json:"product-version"`
	ReleaseVersion         string        `json:"release-version"`
	ManagementMajorVersion int64         `json:"management-major-version"`
	ManagementMinorVersion int64         `json:"management-minor-version"`
	DomainController       string        `json:"domain-controller,omitempty"`
}

// New Окружение с заданным режимом и сборкой, остальные поля пустые.
func New(mode OperationMode, build Build) *Environment {
	return &Environment{OperationMode: mode, Build: build}
}

// FromRootResource Окружение из результата read-resource корневого ресурса.
func FromRootResource(root dmr.ModelNode) *Environment {
	env := &Environment{
		OperationMode:          Standalone,
		Build:                  Community,
		ProductName:            root.Get(dmr.ProductName).AsString(),
		ProductVersion:         root.Get(dmr.ProductVersion).AsString(),
		ReleaseVersion:         root.Get(dmr.ReleaseVersion).AsString(),
		ManagementMajorVersion: root.Get(dmr.ManagementMajorVersion).AsInt(),
		ManagementMinorVersion: root.Get(dmr.ManagementMinorVersion).AsInt(),
	}

	if root.Get(dmr.ProcessType).AsString() == hostControllerProcess {
		env.OperationMode = Domain
		env.DomainController = root.Get("local-host-name").AsString()
	}

	if strings.Contains(strings.ToUpper(env.ProductName), "EAP") {
		env.Build = Product
	}

	return env
}

// IsStandalone true для standalone-сервера.
func (e *Environment) IsStandalone() bool {
	return e == nil || e.OperationMode != Domain
}

// IsCommunity true для community-сборки.
func (e *Environment) IsCommunity() bool {
	return e == nil || e.Build != Product
}

// ManagementVersion Версия management API в виде "major.minor".
func (e *Environment) ManagementVersion() string {
	return fmt.Sprintf("%d.%d", e.ManagementMajorVersion, e.ManagementMinorVersion)
}
