package logger

import "time"

// Field Пара ключ-значение для структурированного лога.
type Field struct {
	Key   string
	Value string
}

// Logger Глобальный логгер консоли. Реализация - SlogAdapter.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	// Close Закрывает файл лога, если он есть.
	Close() error
}

// Err Поле "err"; nil-ошибка записывается пустой строкой.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "err"}
	}
	return Field{Key: "err", Value: err.Error()}
}

// Duration Поле с длительностью в формате time.Duration.String().
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}
