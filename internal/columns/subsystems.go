package columns

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed subsystems.yaml
var subsystemsYAML []byte

// SubsystemMetadata Описание подсистемы для колонки subsystem.
type SubsystemMetadata struct {
	Name       string `yaml:"name" json:"name"`
	Title      string `yaml:"title" json:"title"`
	Subtitle   string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Token      string `yaml:"token,omitempty" json:"token,omitempty"`
	NextColumn string `yaml:"next-column,omitempty" json:"next-column,omitempty"`
	BuiltIn    bool   `yaml:"-" json:"built-in"`
}

// SubsystemRegistry Реестр встроенных подсистем.
type SubsystemRegistry struct {
	byName map[string]SubsystemMetadata
}

// NewSubsystemRegistry Реестр из YAML-списка.
func NewSubsystemRegistry(data []byte) (*SubsystemRegistry, error) {
	var list []SubsystemMetadata
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("не удалось разобрать реестр подсистем: %w", err)
	}

	s := &SubsystemRegistry{byName: make(map[string]SubsystemMetadata, len(list))}
	for _, m := range list {
		if m.Name == "" || m.Title == "" {
			return nil, fmt.Errorf("в реестре подсистем запись без name или title: %+v", m)
		}
		m.BuiltIn = true
		s.byName[m.Name] = m
	}

	return s, nil
}

// DefaultSubsystemRegistry Встроенный реестр консоли.
func DefaultSubsystemRegistry() *SubsystemRegistry {
	s, err := NewSubsystemRegistry(subsystemsYAML)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *SubsystemRegistry) IsBuiltIn(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Get Описание подсистемы: из реестра или сгенерированное для пользовательской подсистемы.
func (s *SubsystemRegistry) Get(name string) SubsystemMetadata {
	if m, ok := s.byName[name]; ok {
		return m
	}
	return SubsystemMetadata{Name: name, Title: Label(name)}
}

// Names Имена встроенных подсистем по алфавиту.
func (s *SubsystemRegistry) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// аббревиатуры, которые пишутся заглавными буквами
var acronyms = map[string]struct{}{
	"ee": {}, "ejb": {}, "ejb3": {}, "ha": {}, "http": {}, "https": {}, "id": {}, "io": {},
	"jca": {}, "jdbc": {}, "jgroups": {}, "jms": {}, "jmx": {}, "jndi": {}, "jpa": {},
	"jsf": {}, "jsp": {}, "jta": {}, "jts": {}, "jvm": {}, "jwt": {}, "mdb": {}, "sar": {}, "sql": {},
	"ssl": {}, "tcp": {}, "udp": {}, "uri": {}, "url": {}, "xa": {}, "xml": {},
}

// Label Человекочитаемое название из имени ресурса: "microprofile-jwt-smallrye" ->
// "Microprofile JWT Smallrye", "ejb3" -> "EJB3".
func Label(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' || r == '.' })
	for i, w := range words {
		lower := strings.ToLower(w)
		if _, ok := acronyms[lower]; ok {
			words[i] = strings.ToUpper(lower)
			continue
		}
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
