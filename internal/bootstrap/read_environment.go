package bootstrap

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// ReadEnvironment Читает корневой ресурс и определяет режим работы и версию продукта.
type ReadEnvironment struct {
	dispatcher dmr.Dispatcher
}

func NewReadEnvironment(dispatcher dmr.Dispatcher) *ReadEnvironment {
	return &ReadEnvironment{dispatcher: dispatcher}
}

func (t *ReadEnvironment) Name() string { return "read-environment" }

func (t *ReadEnvironment) Apply(ctx context.Context, bc *Context) error {
	op := dmr.NewOperation(dmr.ReadResource, dmr.Root).
		Param(dmr.AttributesOnly, true).
		Param(dmr.IncludeRuntime, true).
		Build()

	root, err := t.dispatcher.Execute(ctx, op)
	if err != nil {
		return err
	}

	bc.Environment = environment.FromRootResource(root)

	logger.Log.Info("Прочитано окружение management-сервера",
		logger.String("mode", string(bc.Environment.OperationMode)),
		logger.String("product", bc.Environment.ProductName),
		logger.String("version", bc.Environment.ProductVersion),
		logger.String("management", bc.Environment.ManagementVersion()),
	)

	return nil
}
