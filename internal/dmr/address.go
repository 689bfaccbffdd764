package dmr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Segment Один сегмент адреса ресурса (например host=master).
type Segment struct {
	Key   string
	Value string
}

// ResourceAddress Адрес ресурса в иерархии management-модели.
// Пустой адрес - корень.
type ResourceAddress struct {
	segments []Segment
}

// Root Адрес корневого ресурса.
var Root = ResourceAddress{}

// NewAddress Создаёт адрес из пар ключ/значение: NewAddress("host", "master", "server", "s1").
func NewAddress(pairs ...string) ResourceAddress {
	var a ResourceAddress
	for i := 0; i+1 < len(pairs); i += 2 {
		a = a.Add(pairs[i], pairs[i+1])
	}
	return a
}

// ParseAddress Разбирает адрес вида "/host=master/server-config=server-one".
func ParseAddress(s string) (ResourceAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "/" {
		return Root, nil
	}

	var a ResourceAddress
	for _, part := range strings.Split(strings.Trim(s, "/"), "/") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || key == "" || value == "" {
			return Root, fmt.Errorf("некорректный сегмент адреса `%s` в `%s`", part, s)
		}
		a = a.Add(key, value)
	}

	return a, nil
}

// AddressFromNode Адрес из узла вида [{"host":"master"},{"server":"server-one"}].
func AddressFromNode(node ModelNode) ResourceAddress {
	var a ResourceAddress
	for _, item := range node.AsList() {
		for _, p := range item.AsPropertyList() {
			a = a.Add(p.Name, p.Value.AsString())
		}
	}
	return a
}

// Add Возвращает новый адрес с дополнительным сегментом.
func (a ResourceAddress) Add(key, value string) ResourceAddress {
	segments := make([]Segment, len(a.segments), len(a.segments)+1)
	copy(segments, a.segments)
	return ResourceAddress{segments: append(segments, Segment{Key: key, Value: value})}
}

// Segments Сегменты адреса.
func (a ResourceAddress) Segments() []Segment {
	out := make([]Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// IsRoot true для корневого адреса.
func (a ResourceAddress) IsRoot() bool {
	return len(a.segments) == 0
}

// Parent Адрес родителя (для корня - корень).
func (a ResourceAddress) Parent() ResourceAddress {
	if len(a.segments) == 0 {
		return a
	}
	return ResourceAddress{segments: a.segments[:len(a.segments)-1]}
}

// LastKey Ключ последнего сегмента.
func (a ResourceAddress) LastKey() string {
	if len(a.segments) == 0 {
		return ""
	}
	return a.segments[len(a.segments)-1].Key
}

// LastValue Значение последнего сегмента.
func (a ResourceAddress) LastValue() string {
	if len(a.segments) == 0 {
		return ""
	}
	return a.segments[len(a.segments)-1].Value
}

// String Текстовая форма адреса: "/host=master/server=server-one".
func (a ResourceAddress) String() string {
	if len(a.segments) == 0 {
		return "/"
	}

	var sb strings.Builder
	for _, s := range a.segments {
		sb.WriteString("/")
		sb.WriteString(s.Key)
		sb.WriteString("=")
		sb.WriteString(s.Value)
	}
	return sb.String()
}

// MarshalJSON Адрес в формате management API: [{"host":"master"}].
func (a ResourceAddress) MarshalJSON() ([]byte, error) {
	list := make([]map[string]string, 0, len(a.segments))
	for _, s := range a.segments {
		list = append(list, map[string]string{s.Key: s.Value})
	}
	return json.Marshal(list)
}
