package settings

import (
	"context"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
)

// WithContext Кладёт настройки оператора в контекст запроса.
func WithContext(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, contextkeys.Settings, s)
}

// FromContext Настройки оператора из контекста запроса.
func FromContext(ctx context.Context) (*Settings, bool) {
	s, ok := ctx.Value(contextkeys.Settings).(*Settings)
	return s, ok && s != nil
}

// PageSizeFromContext Размер страницы из настроек оператора или значение по умолчанию.
func PageSizeFromContext(ctx context.Context) int {
	if s, ok := FromContext(ctx); ok {
		if size := s.Get(PageSize).Int(); size > 0 {
			return size
		}
	}
	return DefaultPageSize
}

// PollingFromContext Включено ли обновление страниц по изменениям топологии
// и не чаще какого интервала страница перезагружается.
func PollingFromContext(ctx context.Context) (bool, time.Duration) {
	enabled, seconds := true, DefaultPollTime
	if s, ok := FromContext(ctx); ok {
		if v := s.Get(Poll); v.IsDefined() {
			enabled = v.Bool()
		}
		if i := s.Get(PollTime).Int(); i > 0 {
			seconds = i
		}
	}
	return enabled, time.Duration(seconds) * time.Second
}
