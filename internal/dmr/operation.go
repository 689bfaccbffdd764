package dmr

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Operation Management-операция: имя, адрес и параметры.
type Operation struct {
	Name    string
	Address ResourceAddress
	params  map[string]any
	headers map[string]any
}

// OperationBuilder Построитель Operation.
type OperationBuilder struct {
	op Operation
}

// NewOperation Начинает построение операции.
func NewOperation(name string, address ResourceAddress) *OperationBuilder {
	return &OperationBuilder{op: Operation{Name: name, Address: address}}
}

// Param Добавляет параметр операции.
func (b *OperationBuilder) Param(name string, value any) *OperationBuilder {
	if b.op.params == nil {
		b.op.params = make(map[string]any)
	}
	b.op.params[name] = value
	return b
}

// Header Добавляет заголовок операции (operation-headers).
func (b *OperationBuilder) Header(name string, value any) *OperationBuilder {
	if b.op.headers == nil {
		b.op.headers = make(map[string]any)
	}
	b.op.headers[name] = value
	return b
}

// Build Возвращает готовую операцию.
func (b *OperationBuilder) Build() Operation {
	return b.op
}

// Param Значение параметра операции.
func (o Operation) Param(name string) (any, bool) {
	v, ok := o.params[name]
	return v, ok
}

// WithHeader Копия операции с дополнительным заголовком.
func (o Operation) WithHeader(name string, value any) Operation {
	headers := make(map[string]any, len(o.headers)+1)
	for k, v := range o.headers {
		headers[k] = v
	}
	headers[name] = value
	o.headers = headers
	return o
}

// MarshalJSON Формат management API:
// {"operation":"...","address":[...],<параметры>,"operation-headers":{...}}.
func (o Operation) MarshalJSON() ([]byte, error) {
	node := NewObject().
		With(OperationKey, StringNode(o.Name))

	addr, err := json.Marshal(o.Address)
	if err != nil {
		return nil, err
	}
	addrNode, err := ParseModelNode(addr)
	if err != nil {
		return nil, err
	}
	node = node.With(AddressKey, addrNode)

	names := make([]string, 0, len(o.params))
	for k := range o.params {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		v, err := toNode(o.params[k])
		if err != nil {
			return nil, err
		}
		node = node.With(k, v)
	}

	if len(o.headers) > 0 {
		h, err := toNode(o.headers)
		if err != nil {
			return nil, err
		}
		node = node.With(OperationHeaders, h)
	}

	return node.MarshalJSON()
}

// Преобразование произвольного значения параметра в ModelNode.
func toNode(v any) (ModelNode, error) {
	if n, ok := v.(ModelNode); ok {
		return n, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return ModelNode{}, err
	}
	return ParseModelNode(b)
}

// CompositeOperation Пакет независимых операций, отправляемых одним запросом.
type CompositeOperation struct {
	Steps   []Operation
	headers map[string]any
}

// NewComposite Конструктор пакета операций.
func NewComposite(steps ...Operation) CompositeOperation {
	return CompositeOperation{Steps: steps}
}

// IsEmpty true, если в пакете нет шагов.
func (c CompositeOperation) IsEmpty() bool {
	return len(c.Steps) == 0
}

// WithHeader Копия пакета с заголовком операции.
func (c CompositeOperation) WithHeader(name string, value any) CompositeOperation {
	headers := make(map[string]any, len(c.headers)+1)
	for k, v := range c.headers {
		headers[k] = v
	}
	headers[name] = value
	c.headers = headers
	return c
}

// MarshalJSON {"operation":"composite","address":[],"steps":[...]}.
func (c CompositeOperation) MarshalJSON() ([]byte, error) {
	steps := c.Steps
	if steps == nil {
		steps = []Operation{}
	}

	type composite struct {
		Operation string          `json:"operation"`
		Address   ResourceAddress `json:"address"`
		Steps     []Operation     `json:"steps"`
		Headers   map[string]any  `json:"operation-headers,omitempty"`
	}

	return json.Marshal(composite{
		Operation: Composite,
		Address:   Root,
		Steps:     steps,
		Headers:   c.headers,
	})
}

// CompositeResult Результат пакета: шаги "step-1", "step-2", ... в порядке отправки.
type CompositeResult struct {
	result ModelNode
}

// NewCompositeResult Собирает CompositeResult из узла result ответа на composite.
func NewCompositeResult(result ModelNode) CompositeResult {
	return CompositeResult{result: result}
}

// Step Шаг по индексу (с нуля), ищется по имени "step-N", а не по порядку ключей.
// Для несуществующего шага - неопределённый узел.
func (r CompositeResult) Step(i int) ModelNode {
	if i < 0 {
		return ModelNode{}
	}
	return r.result.Get(stepKey(i))
}

// Size Количество шагов.
func (r CompositeResult) Size() int {
	size := 0
	for _, key := range r.result.Keys() {
		if strings.HasPrefix(key, stepPrefix) {
			size++
		}
	}
	return size
}

// Steps Все шаги в порядке step-1, step-2, ...
func (r CompositeResult) Steps() []ModelNode {
	steps := make([]ModelNode, r.Size())
	for i := range steps {
		steps[i] = r.Step(i)
	}
	return steps
}

const stepPrefix = "step-"

func stepKey(i int) string {
	return stepPrefix + strconv.Itoa(i+1)
}
