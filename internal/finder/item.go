package finder

import "html/template"

// ItemAction Действие над строкой колонки: переход по ссылке или POST-запрос.
type ItemAction struct {
	Title  string `json:"title"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

// NavigateAction Действие-переход (GET).
func NavigateAction(title, href string) ItemAction {
	return ItemAction{Title: title, Href: href, Method: "GET"}
}

// PostAction Действие, выполняемое POST-запросом.
func PostAction(title, href string) ItemAction {
	return ItemAction{Title: title, Href: href, Method: "POST"}
}

// ItemDisplay Как строка колонки выглядит для оператора.
// Пустой ID заменяется на AsID(Title). Пустой FilterData означает, что строка не фильтруется.
type ItemDisplay struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle,omitempty"`
	FilterData string       `json:"-"`
	Tooltip    string       `json:"tooltip,omitempty"`
	Icon       string       `json:"icon,omitempty"`
	NextColumn string       `json:"next-column,omitempty"`
	Folder     bool         `json:"folder,omitempty"`
	Pending    bool         `json:"pending,omitempty"`
	Actions    []ItemAction `json:"actions,omitempty"`
}

func (d ItemDisplay) id() string {
	if d.ID != "" {
		return d.ID
	}
	return AsID(d.Title)
}

// Preview Содержимое панели предпросмотра: заголовок и HTML или набор элементов.
type Preview struct {
	Header   string          `json:"header"`
	HTML     template.HTML   `json:"html,omitempty"`
	Elements []template.HTML `json:"elements,omitempty"`
}

// NewPreview Предпросмотр из готового HTML.
func NewPreview(header string, html template.HTML) *Preview {
	return &Preview{Header: header, HTML: html}
}

// NewElementsPreview Предпросмотр из одного или нескольких элементов.
func NewElementsPreview(header string, first template.HTML, rest ...template.HTML) *Preview {
	return &Preview{Header: header, Elements: append([]template.HTML{first}, rest...)}
}
