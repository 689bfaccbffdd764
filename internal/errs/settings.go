package errs

import "fmt"

// ErrUnknownSetting Кастомная ошибка, сообщающая о неизвестном ключе настройки.
type ErrUnknownSetting struct {
	Key string
}

func (us *ErrUnknownSetting) Error() string {
	return fmt.Sprintf("Неизвестная настройка `%s`", us.Key)
}

func NewErrUnknownSetting(key string) *ErrUnknownSetting {
	return &ErrUnknownSetting{Key: key}
}

// ErrInvalidSetting Кастомная ошибка, сообщающая о недопустимом значении настройки.
type ErrInvalidSetting struct {
	Key   string
	Value string
	Err   error
}

func (is *ErrInvalidSetting) Error() string {
	return fmt.Sprintf("Недопустимое значение `%s` для настройки `%s`: %v", is.Value, is.Key, is.Err)
}

func (is *ErrInvalidSetting) Unwrap() error {
	return is.Err
}

func NewErrInvalidSetting(key, value string, err error) *ErrInvalidSetting {
	return &ErrInvalidSetting{Key: key, Value: value, Err: err}
}
