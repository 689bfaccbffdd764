package dmr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type kind int

const (
	kindUndefined kind = iota
	kindBool
	kindNumber
	kindString
	kindList
	kindObject
)

// ModelNode Узел management-модели: произвольное JSON-значение.
// Объекты сохраняют порядок ключей, как он пришёл от сервера.
type ModelNode struct {
	kind   kind
	b      bool
	s      string // строка или число в текстовом виде
	list   []ModelNode
	keys   []string
	fields map[string]ModelNode
}

// Property Именованное значение из объекта (элемент property list).
type Property struct {
	Name  string
	Value ModelNode
}

// ParseModelNode Разбирает JSON в ModelNode.
func ParseModelNode(data []byte) (ModelNode, error) {
	var node ModelNode
	if err := json.Unmarshal(data, &node); err != nil {
		return ModelNode{}, err
	}

	return node, nil
}

// UnmarshalJSON Разбор JSON с сохранением порядка ключей объектов.
func (n *ModelNode) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeNode(dec)
	if err != nil {
		return err
	}

	// после значения не должно остаться ничего, кроме пробелов
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("лишние данные после JSON-значения")
	}

	*n = node
	return nil
}

func decodeNode(dec *json.Decoder) (ModelNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return ModelNode{}, err
	}

	switch v := tok.(type) {
	case nil:
		return ModelNode{}, nil
	case bool:
		return ModelNode{kind: kindBool, b: v}, nil
	case json.Number:
		return ModelNode{kind: kindNumber, s: v.String()}, nil
	case string:
		return ModelNode{kind: kindString, s: v}, nil
	case json.Delim:
		switch v {
		case '[':
			list := make([]ModelNode, 0)
			for dec.More() {
				item, err := decodeNode(dec)
				if err != nil {
					return ModelNode{}, err
				}
				list = append(list, item)
			}
			if _, err = dec.Token(); err != nil { // ']'
				return ModelNode{}, err
			}
			return ModelNode{kind: kindList, list: list}, nil
		case '{':
			obj := ModelNode{kind: kindObject, fields: make(map[string]ModelNode)}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return ModelNode{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return ModelNode{}, fmt.Errorf("ожидался ключ объекта, получено %v", keyTok)
				}
				value, err := decodeNode(dec)
				if err != nil {
					return ModelNode{}, err
				}
				obj.set(key, value)
			}
			if _, err = dec.Token(); err != nil { // '}'
				return ModelNode{}, err
			}
			return obj, nil
		}
	}

	return ModelNode{}, fmt.Errorf("неожиданный JSON-токен %v", tok)
}

// MarshalJSON Сериализация с сохранением порядка ключей.
func (n ModelNode) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (n ModelNode) encode(buf *bytes.Buffer) error {
	switch n.kind {
	case kindUndefined:
		buf.WriteString("null")
	case kindBool:
		buf.WriteString(strconv.FormatBool(n.b))
	case kindNumber:
		buf.WriteString(n.s)
	case kindString:
		b, err := json.Marshal(n.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case kindList:
		buf.WriteByte('[')
		for i, item := range n.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case kindObject:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err = n.fields[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	return nil
}

func (n *ModelNode) set(key string, value ModelNode) {
	if _, exists := n.fields[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = value
}

// NewObject Пустой объектный узел.
func NewObject() ModelNode {
	return ModelNode{kind: kindObject, fields: make(map[string]ModelNode)}
}

// StringNode Строковый узел.
func StringNode(s string) ModelNode {
	return ModelNode{kind: kindString, s: s}
}

// With Возвращает копию объекта с добавленным (или заменённым) полем.
func (n ModelNode) With(key string, value ModelNode) ModelNode {
	out := NewObject()
	for _, k := range n.keys {
		out.set(k, n.fields[k])
	}
	out.set(key, value)
	return out
}

// IsDefined false для null и отсутствующих значений.
func (n ModelNode) IsDefined() bool {
	return n.kind != kindUndefined
}

// Get Значение поля объекта; для не-объектов и отсутствующих полей - неопределённый узел.
func (n ModelNode) Get(key string) ModelNode {
	if n.kind != kindObject {
		return ModelNode{}
	}

	return n.fields[key]
}

// HasDefined true, если поле есть и не null.
func (n ModelNode) HasDefined(key string) bool {
	return n.Get(key).IsDefined()
}

// Keys Ключи объекта в исходном порядке.
func (n ModelNode) Keys() []string {
	if n.kind != kindObject {
		return nil
	}

	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// AsString Строковое представление скалярного значения.
func (n ModelNode) AsString() string {
	switch n.kind {
	case kindString, kindNumber:
		return n.s
	case kindBool:
		return strconv.FormatBool(n.b)
	case kindList, kindObject:
		b, _ := n.MarshalJSON()
		return string(b)
	default:
		return ""
	}
}

// AsBool Логическое значение; строки "true"/"false" тоже поддерживаются.
func (n ModelNode) AsBool() bool {
	switch n.kind {
	case kindBool:
		return n.b
	case kindString:
		return strings.EqualFold(n.s, "true")
	default:
		return false
	}
}

// AsInt Целочисленное значение (0, если преобразовать нельзя).
func (n ModelNode) AsInt() int64 {
	switch n.kind {
	case kindNumber, kindString:
		v, err := strconv.ParseInt(n.s, 10, 64)
		if err != nil {
			return 0
		}
		return v
	default:
		return 0
	}
}

// AsList Элементы списка; объект превращается в список своих значений.
func (n ModelNode) AsList() []ModelNode {
	switch n.kind {
	case kindList:
		return n.list
	case kindObject:
		out := make([]ModelNode, 0, len(n.keys))
		for _, k := range n.keys {
			out = append(out, n.fields[k])
		}
		return out
	default:
		return nil
	}
}

// AsPropertyList Поля объекта как список Property в исходном порядке.
func (n ModelNode) AsPropertyList() []Property {
	if n.kind != kindObject {
		return nil
	}

	props := make([]Property, 0, len(n.keys))
	for _, k := range n.keys {
		props = append(props, Property{Name: k, Value: n.fields[k]})
	}
	return props
}

// IsFailure true для шага/элемента результата с outcome=failed.
func (n ModelNode) IsFailure() bool {
	return n.Get(OutcomeKey).AsString() == Failed
}

// FailureDescription Текст ошибки из failure-description.
func (n ModelNode) FailureDescription() string {
	return n.Get(FailureDescription).AsString()
}
