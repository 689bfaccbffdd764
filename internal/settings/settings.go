package settings

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
)

// Key Ключ настройки консоли.
type Key string

const (
	Title           Key = "title"
	CollectUserData Key = "collect-user-data"
	Locale          Key = "locale"
	PageSize        Key = "page-size"
	Poll            Key = "poll"
	PollTime        Key = "poll-time"
	RunAs           Key = "run-as"
)

// Значения по умолчанию.
const (
	DefaultTitle    = "Management Console"
	DefaultLocale   = "en"
	DefaultPageSize = 10
	// секунды
	DefaultPollTime = 10
)

// Keys Все известные ключи в порядке загрузки.
var Keys = []Key{Title, CollectUserData, Locale, PageSize, Poll, PollTime, RunAs}

// ParseKey Ключ по имени.
func ParseKey(s string) (Key, error) {
	for _, k := range Keys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errs.NewErrUnknownSetting(s)
}

// Value Значение настройки. Неопределённое значение отличается от пустой строки.
type Value struct {
	raw     string
	defined bool
}

func (v Value) IsDefined() bool { return v.defined }

func (v Value) String() string { return v.raw }

func (v Value) Bool() bool {
	b, _ := strconv.ParseBool(v.raw)
	return b
}

func (v Value) Int() int {
	i, _ := strconv.Atoi(v.raw)
	return i
}

// Set Значение как набор строк через запятую (для run-as).
func (v Value) Set() []string {
	if !v.defined || strings.TrimSpace(v.raw) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(v.raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	sort.Strings(out)
	return out
}

// Settings Типизированные настройки оператора.
type Settings struct {
	mu     sync.RWMutex
	values map[Key]Value
}

// New Пустой набор настроек.
func New() *Settings {
	return &Settings{values: make(map[Key]Value)}
}

// Load Берёт сохранённое значение, а если его нет - значение по умолчанию.
// defaultValue == nil оставляет настройку неопределённой.
func (s *Settings) Load(key Key, stored map[Key]string, defaultValue any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := stored[key]; ok {
		if err := Validate(key, raw); err == nil {
			s.values[key] = Value{raw: raw, defined: true}
			return
		}
	}

	if defaultValue == nil {
		delete(s.values, key)
		return
	}
	s.values[key] = Value{raw: fmt.Sprint(defaultValue), defined: true}
}

// Get Значение настройки.
func (s *Settings) Get(key Key) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[key]
}

// Set Проверяет и сохраняет значение.
func (s *Settings) Set(key Key, raw string) error {
	if err := Validate(key, raw); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = Value{raw: raw, defined: true}
	return nil
}

// Validate Проверка значения для ключа.
func Validate(key Key, raw string) error {
	switch key {
	case Title, Locale:
		if strings.TrimSpace(raw) == "" {
			return errs.NewErrInvalidSetting(string(key), raw, fmt.Errorf("пустое значение"))
		}
	case CollectUserData, Poll:
		if _, err := strconv.ParseBool(raw); err != nil {
			return errs.NewErrInvalidSetting(string(key), raw, err)
		}
	case PageSize, PollTime:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return errs.NewErrInvalidSetting(string(key), raw, err)
		}
		if i <= 0 {
			return errs.NewErrInvalidSetting(string(key), raw, fmt.Errorf("значение должно быть больше нуля"))
		}
	case RunAs:
		// любой список ролей через запятую
	default:
		return errs.NewErrUnknownSetting(string(key))
	}

	return nil
}

// AsMap Типизированное представление для JSON.
func (s *Settings) AsMap() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(Keys))
	for _, k := range Keys {
		v, ok := s.values[k]
		if !ok {
			out[string(k)] = nil
			continue
		}

		switch k {
		case CollectUserData, Poll:
			out[string(k)] = v.Bool()
		case PageSize, PollTime:
			out[string(k)] = v.Int()
		case RunAs:
			out[string(k)] = v.Set()
		default:
			out[string(k)] = v.String()
		}
	}
	return out
}

// MarshalJSON JSON-представление настроек.
func (s *Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.AsMap())
}

// String Для отладочного логирования.
func (s *Settings) String() string {
	b, _ := s.MarshalJSON()
	return string(b)
}
