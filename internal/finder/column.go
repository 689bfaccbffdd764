package finder

import (
	"context"
	"fmt"
	"strings"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
)

// Context Состояние навигации одного запроса: токен страницы, выбранный путь
// и выбор оператора для разрешения адресов.
type Context struct {
	Token     string
	Path      Path
	Statement *dmr.StatementContext
}

// NewContext Конструктор Context с пустым путём.
func NewContext(token string, sc *dmr.StatementContext) *Context {
	return &Context{Token: token, Path: Path{}, Statement: sc}
}

// Row Строка колонки после фильтрации.
type Row struct {
	ItemDisplay
	Visible bool `json:"visible"`
	Active  bool `json:"active"`
}

// View Отрисованная колонка.
type View struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Header     string       `json:"header"`
	ShowCount  bool         `json:"show-count"`
	Filterable bool         `json:"filterable"`
	Filter     string       `json:"filter,omitempty"`
	Matched    int          `json:"matched"`
	Total      int          `json:"total"`
	Rows       []Row        `json:"rows"`
	Actions    []ItemAction `json:"actions,omitempty"`
}

// Selected Активная строка колонки.
func (v *View) Selected() (Row, bool) {
	for _, r := range v.Rows {
		if r.Active {
			return r, true
		}
	}
	return Row{}, false
}

//go:generate mockgen -destination=mocks/mock_column.go -package=mocks . Column

// Column Колонка finder'а без знания о типе её элементов.
type Column interface {
	ID() string
	Title() string
	// Render Загружает элементы и отрисовывает колонку. Активной отмечается строка,
	// выбранная для этой колонки в fc.Path.
	Render(ctx context.Context, fc *Context, filter string) (*View, error)
	// Select Отмечает элемент выбранным и применяет выбор к fc.Statement.
	Select(ctx context.Context, fc *Context, itemID string) (*View, ItemDisplay, error)
	// Preview Предпросмотр элемента; nil, если колонка предпросмотр не поддерживает.
	Preview(ctx context.Context, fc *Context, itemID string) (*Preview, error)
}

// ItemsProvider Загружает элементы колонки. Ошибка возвращается вызывающему как есть.
type ItemsProvider[T any] func(ctx context.Context, fc *Context) ([]T, error)

// ItemRenderer Представление элемента в строке.
type ItemRenderer[T any] func(fc *Context, item T) ItemDisplay

// PreviewCallback Содержимое предпросмотра элемента.
type PreviewCallback[T any] func(ctx context.Context, fc *Context, item T) (*Preview, error)

// SelectCallback Реакция на выбор элемента.
type SelectCallback[T any] func(fc *Context, item T)

// FinderColumn Колонка с элементами типа T.
type FinderColumn[T any] struct {
	id         string
	title      string
	showCount  bool
	withFilter bool
	actions    []ItemAction
	provider   ItemsProvider[T]
	renderer   ItemRenderer[T]
	preview    PreviewCallback[T]
	onSelect   SelectCallback[T]
}

// Builder Собирает FinderColumn.
type Builder[T any] struct {
	column FinderColumn[T]
}

// NewBuilder Начинает описание колонки.
func NewBuilder[T any](id, title string) *Builder[T] {
	return &Builder[T]{column: FinderColumn[T]{id: id, title: title}}
}

func (b *Builder[T]) ItemsProvider(p ItemsProvider[T]) *Builder[T] {
	b.column.provider = p
	return b
}

// Items Статический набор элементов.
func (b *Builder[T]) Items(items ...T) *Builder[T] {
	b.column.provider = func(context.Context, *Context) ([]T, error) {
		return items, nil
	}
	return b
}

func (b *Builder[T]) ItemRenderer(r ItemRenderer[T]) *Builder[T] {
	b.column.renderer = r
	return b
}

func (b *Builder[T]) ColumnAction(action ItemAction) *Builder[T] {
	b.column.actions = append(b.column.actions, action)
	return b
}

func (b *Builder[T]) ShowCount() *Builder[T] {
	b.column.showCount = true
	return b
}

func (b *Builder[T]) WithFilter() *Builder[T] {
	b.column.withFilter = true
	return b
}

func (b *Builder[T]) OnPreview(p PreviewCallback[T]) *Builder[T] {
	b.column.preview = p
	return b
}

func (b *Builder[T]) OnSelect(s SelectCallback[T]) *Builder[T] {
	b.column.onSelect = s
	return b
}

// Build Возвращает колонку. Без renderer'а элемент отображается через fmt.Sprint.
func (b *Builder[T]) Build() *FinderColumn[T] {
	c := b.column
	if c.provider == nil {
		c.provider = func(context.Context, *Context) ([]T, error) { return nil, nil }
	}
	if c.renderer == nil {
		c.renderer = func(_ *Context, item T) ItemDisplay {
			return ItemDisplay{Title: fmt.Sprint(item)}
		}
	}
	return &c
}

func (c *FinderColumn[T]) ID() string    { return c.id }
func (c *FinderColumn[T]) Title() string { return c.title }

func (c *FinderColumn[T]) Render(ctx context.Context, fc *Context, filter string) (*View, error) {
	_, displays, err := c.load(ctx, fc)
	if err != nil {
		return nil, err
	}

	selected, _ := fc.Path.Item(c.id)
	return c.view(displays, filter, selected), nil
}

func (c *FinderColumn[T]) Select(ctx context.Context, fc *Context, itemID string) (*View, ItemDisplay, error) {
	items, displays, err := c.load(ctx, fc)
	if err != nil {
		return nil, ItemDisplay{}, err
	}

	i := indexOf(displays, itemID)
	if i < 0 {
		return nil, ItemDisplay{}, errs.NewErrItemNotFound(c.id, itemID)
	}

	if c.onSelect != nil {
		c.onSelect(fc, items[i])
	}

	return c.view(displays, "", itemID), displays[i], nil
}

func (c *FinderColumn[T]) Preview(ctx context.Context, fc *Context, itemID string) (*Preview, error) {
	items, displays, err := c.load(ctx, fc)
	if err != nil {
		return nil, err
	}

	i := indexOf(displays, itemID)
	if i < 0 {
		return nil, errs.NewErrItemNotFound(c.id, itemID)
	}

	if c.preview == nil {
		return nil, nil
	}

	return c.preview(ctx, fc, items[i])
}

func (c *FinderColumn[T]) load(ctx context.Context, fc *Context) ([]T, []ItemDisplay, error) {
	items, err := c.provider(ctx, fc)
	if err != nil {
		return nil, nil, err
	}

	displays := make([]ItemDisplay, len(items))
	for i, item := range items {
		d := c.renderer(fc, item)
		d.ID = d.id()
		displays[i] = d
	}

	return items, displays, nil
}

func (c *FinderColumn[T]) view(displays []ItemDisplay, filter, selected string) *View {
	if !c.withFilter {
		filter = ""
	}

	v := &View{
		ID:         c.id,
		Title:      c.title,
		ShowCount:  c.showCount,
		Filterable: c.withFilter,
		Filter:     filter,
		Total:      len(displays),
		Rows:       make([]Row, len(displays)),
		Actions:    c.actions,
	}

	for i, d := range displays {
		visible := Matches(filter, d.FilterData)
		if visible {
			v.Matched++
		}
		v.Rows[i] = Row{ItemDisplay: d, Visible: visible, Active: selected != "" && d.ID == selected}
	}

	v.Header = Header(c.title, v.Matched, v.Total, c.showCount)
	return v
}

func indexOf(displays []ItemDisplay, id string) int {
	for i, d := range displays {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Matches Совпадение фильтра без учёта регистра. Пустой фильтр и строки
// без данных для фильтрации совпадают всегда.
func Matches(filter, filterData string) bool {
	if strings.TrimSpace(filter) == "" || filterData == "" {
		return true
	}
	return strings.Contains(strings.ToLower(filterData), strings.ToLower(filter))
}

// Header Заголовок колонки: "Title (n)", если видны все строки, иначе "Title (m / n)".
// Без showCount это просто Title.
func Header(title string, matched, total int, showCount bool) string {
	if !showCount {
		return title
	}
	if matched == total {
		return fmt.Sprintf("%s (%d)", title, total)
	}
	return fmt.Sprintf("%s (%d / %d)", title, matched, total)
}
