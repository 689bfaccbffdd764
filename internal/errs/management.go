package errs

import "fmt"

// ErrOperationFailed Кастомная ошибка, сообщающая, что management-операция завершилась
// с outcome=failed. Description содержит failure-description из ответа.
type ErrOperationFailed struct {
	Operation   string
	Address     string
	Description string
}

func (of *ErrOperationFailed) Error() string {
	return fmt.Sprintf("Операция `%s` на `%s` завершилась ошибкой: %s", of.Operation, of.Address, of.Description)
}

func NewErrOperationFailed(operation, address, description string) *ErrOperationFailed {
	return &ErrOperationFailed{
		Operation:   operation,
		Address:     address,
		Description: description,
	}
}

// ErrDispatcher Кастомная ошибка транспорта: management-эндпоинт недоступен или вернул
// ответ, который не удалось разобрать.
type ErrDispatcher struct {
	Endpoint string
	Err      error
}

func (de *ErrDispatcher) Error() string {
	return fmt.Sprintf("Ошибка обращения к management-эндпоинту %s: %v", de.Endpoint, de.Err)
}

func (de *ErrDispatcher) Unwrap() error {
	return de.Err
}

func NewErrDispatcher(endpoint string, err error) *ErrDispatcher {
	return &ErrDispatcher{
		Endpoint: endpoint,
		Err:      err,
	}
}

// ErrServerNotFound Кастомная ошибка, сообщающая, что server-config не найден на хосте.
type ErrServerNotFound struct {
	Host   string
	Server string
}

func (sn *ErrServerNotFound) Error() string {
	return fmt.Sprintf("Сервер `%s` не найден на хосте `%s`", sn.Server, sn.Host)
}

func NewErrServerNotFound(host, server string) *ErrServerNotFound {
	return &ErrServerNotFound{
		Host:   host,
		Server: server,
	}
}

// ErrActionNotAllowed Кастомная ошибка: действие недопустимо в текущем состоянии сервера.
type ErrActionNotAllowed struct {
	Action string
	Server string
	Reason string
}

func (an *ErrActionNotAllowed) Error() string {
	return fmt.Sprintf("Действие `%s` недоступно для сервера `%s`: %s", an.Action, an.Server, an.Reason)
}

func NewErrActionNotAllowed(action, server, reason string) *ErrActionNotAllowed {
	return &ErrActionNotAllowed{
		Action: action,
		Server: server,
		Reason: reason,
	}
}
