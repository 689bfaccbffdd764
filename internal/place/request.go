package place

import (
	"fmt"
	"net/url"
	"strings"
)

// Name token'ы страниц консоли.
const (
	Homepage            = "home"
	Configuration       = "configuration"
	Runtime             = "runtime"
	ModelBrowser        = "model-browser"
	ServerConfiguration = "server-configuration"
	Paths               = "path"
	SystemProperties    = "system-properties"
)

// Параметры запросов.
const (
	AddressParam   = "address"
	ChildTypeParam = "child-type"
	PathParam      = "path"
	HostParam      = "host"
	ServerParam    = "server-config"
)

// HrefPrefix Префикс ссылок на страницы консоли.
const HrefPrefix = "/ui/"

// Param Параметр запроса страницы.
type Param struct {
	Name  string
	Value string
}

// Request Запрос страницы: name token и упорядоченные параметры.
// Строковая форма "token;k=v;k2=v2", значения экранируются как в query.
type Request struct {
	NameToken string
	Params    []Param
}

// NewRequest Запрос без параметров.
func NewRequest(nameToken string) Request {
	return Request{NameToken: nameToken}
}

// With Новый запрос с добавленным параметром.
func (r Request) With(name, value string) Request {
	params := make([]Param, len(r.Params), len(r.Params)+1)
	copy(params, r.Params)
	return Request{NameToken: r.NameToken, Params: append(params, Param{Name: name, Value: value})}
}

// Parameter Значение параметра или defaultValue.
func (r Request) Parameter(name, defaultValue string) string {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return defaultValue
}

func (r Request) String() string {
	var b strings.Builder
	b.WriteString(r.NameToken)
	for _, p := range r.Params {
		b.WriteByte(';')
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Href Ссылка на страницу.
func (r Request) Href() string {
	return HrefPrefix + r.String()
}

// ParseRequest Разбирает строку "token;k=v;k2=v2".
func ParseRequest(s string) (Request, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	parts := strings.Split(s, ";")

	token, err := url.PathUnescape(parts[0])
	if err != nil {
		return Request{}, fmt.Errorf("некорректный name token `%s`: %w", parts[0], err)
	}

	req := Request{NameToken: token}
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}

		rawName, rawValue, ok := strings.Cut(part, "=")
		if !ok {
			return Request{}, fmt.Errorf("параметр `%s` без значения", part)
		}

		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return Request{}, fmt.Errorf("некорректное имя параметра `%s`: %w", rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return Request{}, fmt.Errorf("некорректное значение параметра `%s`: %w", rawValue, err)
		}

		req.Params = append(req.Params, Param{Name: name, Value: value})
	}

	return req, nil
}
