package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// RequestIDHeader Заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// Структура для хранения данных ответа.
type responseData struct {
	status int
	size   int
}

// LoggingResponseWriter Подменяет оригинальный http.ResponseWriter
// для получения статуса и размера ответа.
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (l *LoggingResponseWriter) Write(b []byte) (int, error) {
	size, err := l.ResponseWriter.Write(b)
	l.responseData.size += size

	return size, err
}

func (l *LoggingResponseWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)
	l.responseData.status = statusCode
}

// Flush Нужен потоку событий: без него SSE не доходит до клиента.
func (l *LoggingResponseWriter) Flush() {
	if f, ok := l.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestIDMiddleware Берёт идентификатор запроса из заголовка или создаёт новый.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), contextkeys.RequestID, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LogMiddleware Middleware для логирования всех запросов.
func LogMiddleware(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		data := responseData{}

		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   &data,
		}

		start := time.Now()
		h.ServeHTTP(&lw, r)
		duration := time.Since(start)

		requestID, _ := r.Context().Value(contextkeys.RequestID).(string)

		logger.Log.Debug("Got incoming HTTP request",
			logger.String("request_id", requestID),
			logger.String("uri", r.RequestURI),
			logger.String("method", r.Method),
			logger.String("status", strconv.Itoa(data.status)),
			logger.String("duration", duration.String()),
			logger.String("size", strconv.Itoa(data.size)),
		)
	}

	return http.HandlerFunc(f)
}
