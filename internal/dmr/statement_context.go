package dmr

import (
	"fmt"
	"strings"
)

// Ключи выбранных в finder'е ресурсов.
const (
	SelectedHost        = "selected.host"
	SelectedServerGroup = "selected.server-group"
	SelectedProfile     = "selected.profile"
	SelectedServer      = "selected.server"
)

// StatementContext Хранит текущий выбор оператора (хост, группа, профиль, сервер),
// по которому разрешаются шаблоны адресов.
type StatementContext struct {
	standalone bool
	selected   map[string]string
}

// NewStatementContext Конструктор StatementContext.
func NewStatementContext(standalone bool) *StatementContext {
	return &StatementContext{
		standalone: standalone,
		selected:   make(map[string]string),
	}
}

// Standalone true, если сервер работает в standalone-режиме.
func (sc *StatementContext) Standalone() bool {
	return sc.standalone
}

// Select Запоминает выбранное значение.
func (sc *StatementContext) Select(key, value string) {
	sc.selected[key] = value
}

// Selected Выбранное значение по ключу.
func (sc *StatementContext) Selected(key string) (string, bool) {
	v, ok := sc.selected[key]
	return v, ok && v != ""
}

func (sc *StatementContext) SelectedHost() string {
	v, _ := sc.Selected(SelectedHost)
	return v
}

func (sc *StatementContext) SelectedServerGroup() string {
	v, _ := sc.Selected(SelectedServerGroup)
	return v
}

func (sc *StatementContext) SelectedProfile() string {
	v, _ := sc.Selected(SelectedProfile)
	return v
}

func (sc *StatementContext) SelectedServer() string {
	v, _ := sc.Selected(SelectedServer)
	return v
}

// AddressTemplate Шаблон адреса с подстановками вида "{selected.host}" и "*".
// Пример: "{selected.profile}/subsystem=*".
type AddressTemplate string

// Resolve Разрешает шаблон в адрес. Подстановки {selected.profile} и {selected.server}
// в standalone-режиме опускаются. Значения "*" по порядку заменяются на wildcards;
// если wildcards закончились, "*" остаётся как есть.
func (t AddressTemplate) Resolve(sc *StatementContext, wildcards ...string) (ResourceAddress, error) {
	var a ResourceAddress
	trimmed := strings.Trim(string(t), "/")
	if trimmed == "" {
		return Root, nil
	}

	for _, part := range strings.Split(trimmed, "/") {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			key := strings.TrimSuffix(strings.TrimPrefix(part, "{"), "}")
			resourceType := strings.TrimPrefix(key, "selected.")

			if sc.standalone && (key == SelectedProfile || key == SelectedServer) {
				continue
			}

			value, ok := sc.Selected(key)
			if !ok {
				return Root, fmt.Errorf("в шаблоне `%s` не выбрано значение для %s", t, key)
			}

			a = a.Add(resourceType, value)
			continue
		}

		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Root, fmt.Errorf("некорректный сегмент `%s` в шаблоне `%s`", part, t)
		}

		if value == "*" && len(wildcards) > 0 {
			value, wildcards = wildcards[0], wildcards[1:]
		}

		a = a.Add(key, value)
	}

	return a, nil
}
