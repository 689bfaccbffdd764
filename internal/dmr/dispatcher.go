package dmr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

//go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks . Dispatcher

// Dispatcher Выполняет management-операции.
type Dispatcher interface {
	Execute(ctx context.Context, op Operation) (ModelNode, error)
	ExecuteComposite(ctx context.Context, composite CompositeOperation) (CompositeResult, error)
}

// WithRunAs Кладёт в контекст роли, от имени которых выполняются операции.
func WithRunAs(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, contextkeys.RunAs, roles)
}

// RunAsFromContext Роли run-as из контекста, если заданы.
func RunAsFromContext(ctx context.Context) []string {
	roles, _ := ctx.Value(contextkeys.RunAs).([]string)
	return roles
}

// Функция отправки тела запроса на management-эндпоинт.
type postFunc func(ctx context.Context, payload []byte) ([]byte, error)

// Общая часть HTTP и WinRM диспетчеров: сериализация, run-as заголовки и разбор ответа.
type dispatcher struct {
	endpoint string
	post     postFunc
}

// Execute Выполняет одиночную операцию и возвращает узел result.
func (d *dispatcher) Execute(ctx context.Context, op Operation) (ModelNode, error) {
	if roles := RunAsFromContext(ctx); len(roles) > 0 {
		op = op.WithHeader(Roles, roles)
	}

	response, err := d.roundTrip(ctx, op)
	if err != nil {
		return ModelNode{}, err
	}

	if response.IsFailure() {
		return ModelNode{}, errs.NewErrOperationFailed(op.Name, op.Address.String(), response.FailureDescription())
	}

	return response.Get(ResultKey), nil
}

// ExecuteComposite Выполняет пакет операций. Шаги с outcome=failed не считаются ошибкой
// пакета: если сервер вернул result, вызывающий разбирает шаги сам.
func (d *dispatcher) ExecuteComposite(ctx context.Context, composite CompositeOperation) (CompositeResult, error) {
	if composite.IsEmpty() {
		return CompositeResult{}, nil
	}

	if roles := RunAsFromContext(ctx); len(roles) > 0 {
		composite = composite.WithHeader(Roles, roles)
	}

	response, err := d.roundTrip(ctx, composite)
	if err != nil {
		return CompositeResult{}, err
	}

	if response.IsFailure() && !response.HasDefined(ResultKey) {
		return CompositeResult{}, errs.NewErrOperationFailed(Composite, Root.String(), response.FailureDescription())
	}

	return NewCompositeResult(response.Get(ResultKey)), nil
}

func (d *dispatcher) roundTrip(ctx context.Context, request json.Marshaler) (ModelNode, error) {
	payload, err := request.MarshalJSON()
	if err != nil {
		return ModelNode{}, fmt.Errorf("не удалось сериализовать операцию: %w", err)
	}

	logger.Log.Debug("Отправка management-операции",
		logger.String("endpoint", d.endpoint),
		logger.String("payload", string(payload)),
	)

	body, err := d.post(ctx, payload)
	if err != nil {
		return ModelNode{}, errs.NewErrDispatcher(d.endpoint, err)
	}

	response, err := ParseModelNode(body)
	if err != nil {
		return ModelNode{}, errs.NewErrDispatcher(d.endpoint, fmt.Errorf("некорректный ответ: %w", err))
	}

	if !response.HasDefined(OutcomeKey) {
		return ModelNode{}, errs.NewErrDispatcher(d.endpoint, fmt.Errorf("в ответе нет поля %s", OutcomeKey))
	}

	return response, nil
}
