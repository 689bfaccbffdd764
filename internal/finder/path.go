package finder

import (
	"strings"
	"unicode"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
)

const (
	segmentSeparator = "!"
	keyValueSep      = "~"
)

// Segment Выбор в одной колонке: id колонки и id элемента.
type Segment struct {
	Column string `json:"column"`
	Item   string `json:"item"`
}

// Path Последовательность выборов слева направо, в строке "column~item!column~item".
type Path []Segment

// ParsePath Разбирает путь. Пустая строка даёт пустой путь.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, nil
	}

	parts := strings.Split(s, segmentSeparator)
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		column, item, ok := strings.Cut(part, keyValueSep)
		if !ok || column == "" || item == "" {
			return nil, errs.NewErrInvalidPath(s, "ожидается column~item, получено `"+part+"`")
		}
		path = append(path, Segment{Column: column, Item: item})
	}

	return path, nil
}

// Append Новый путь с ещё одним сегментом; исходный путь не меняется.
func (p Path) Append(column, item string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, Segment{Column: column, Item: item})
}

// Without Путь без сегментов заданной колонки.
func (p Path) Without(column string) Path {
	next := make(Path, 0, len(p))
	for _, s := range p {
		if s.Column != column {
			next = append(next, s)
		}
	}
	return next
}

// First Первый сегмент пути.
func (p Path) First() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[0], true
}

// Item Выбранный элемент колонки.
func (p Path) Item(column string) (string, bool) {
	for _, s := range p {
		if s.Column == column {
			return s.Item, true
		}
	}
	return "", false
}

func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		parts = append(parts, s.Column+keyValueSep+s.Item)
	}
	return strings.Join(parts, segmentSeparator)
}

// AsID Превращает заголовок в id: нижний регистр, пробелы и прочие символы заменяются на "-".
// "Socket Bindings" -> "socket-bindings".
func AsID(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
