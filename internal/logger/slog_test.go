package logger

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Сброс синглтона между тестами.
func resetLogger() {
	Log = nil
	once = sync.Once{}
}

// TestSlogAdapterLevels Проверяет запись сообщений всех уровней и полей.
func TestSlogAdapterLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	adapter.Debug("debug message", String("host", "master"))
	adapter.Info("info message", Int("servers", 3))
	adapter.Warn("warn message", Int64("offset", 150))
	adapter.Error("error message", Bool("standalone", false))

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "host=master")
	assert.Contains(t, out, "servers=3")
	assert.Contains(t, out, "offset=150")
	assert.Contains(t, out, "standalone=false")
	assert.Contains(t, out, "level=ERROR")
}

// TestParseLevel Проверяет разбор уровня логирования без учёта регистра.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"Info с пробелами", "  Info ", slog.LevelInfo},
		{"WARN", "WARN", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"Error", "Error", slog.LevelError},
		{"неизвестный уровень", "verbose", slog.LevelDebug},
		{"пустая строка", "", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

// TestSlogAdapterFiltersByLevel Проверяет отсечение сообщений ниже уровня.
func TestSlogAdapterFiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))}

	adapter.Debug("hidden debug")
	adapter.Info("hidden info")
	adapter.Warn("visible warn")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible warn")
}

// TestInitLoggerStdout Проверяет инициализацию с выводом в stdout.
func TestInitLoggerStdout(t *testing.T) {
	resetLogger()
	defer resetLogger()

	InitLogger("info", "stdout")

	require.NotNil(t, Log)
	adapter, ok := Log.(*SlogAdapter)
	require.True(t, ok)
	assert.Nil(t, adapter.output, "stdout не должен закрываться")
	assert.NoError(t, adapter.Close())
}

// TestInitLoggerFile Проверяет запись лога в файл через lumberjack.
func TestInitLoggerFile(t *testing.T) {
	resetLogger()
	defer resetLogger()

	path := filepath.Join(t.TempDir(), "console.log")
	InitLogger("debug", path)

	Log.Info("written to file", String("column", "server"))
	require.NoError(t, Log.(*SlogAdapter).Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "column=server")
}

// TestInitLoggerSingleton Проверяет, что повторная инициализация не меняет логгер.
func TestInitLoggerSingleton(t *testing.T) {
	resetLogger()
	defer resetLogger()

	InitLogger("debug", "stdout")
	first := Log
	InitLogger("error", "stderr")

	assert.Same(t, first, Log)
}

// TestSlogAdapterCloseNil Проверяет закрытие адаптера без output.
func TestSlogAdapterCloseNil(t *testing.T) {
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
	assert.NoError(t, adapter.Close())
}

// TestConvertFields Проверяет преобразование Fields в []any.
func TestConvertFields(t *testing.T) {
	result := convertFields([]Field{String("a", "1"), Int("b", 2)})
	assert.Equal(t, []any{"a", "1", "b", "2"}, result)
	assert.Empty(t, convertFields(nil))
}

// TestLoggerConcurrency Проверяет конкурентное логирование.
func TestLoggerConcurrency(t *testing.T) {
	buf := &syncBuffer{}
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(buf, nil))}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			adapter.Info("concurrent log", Int("id", id))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, strings.Count(buf.String(), "concurrent log"))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestFieldHelpers Поля для ошибок и длительностей.
func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{Key: "err", Value: "refused"}, Err(errors.New("refused")))
	assert.Equal(t, Field{Key: "err"}, Err(nil))
	assert.Equal(t, Field{Key: "interval", Value: "10s"}, Duration("interval", 10*time.Second))
}
