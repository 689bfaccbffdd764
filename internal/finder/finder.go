package finder

import (
	"context"
	"sync"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// Finder Реестр колонок и навигация по пути.
type Finder struct {
	mu      sync.RWMutex
	columns map[string]Column
}

// New Конструктор Finder.
func New(columns ...Column) *Finder {
	f := &Finder{columns: make(map[string]Column)}
	for _, c := range columns {
		f.Register(c)
	}
	return f
}

// Register Регистрирует колонку, заменяя колонку с тем же id.
func (f *Finder) Register(c Column) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.columns[c.ID()] = c
}

// Column Колонка по id.
func (f *Finder) Column(id string) (Column, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	c, ok := f.columns[id]
	if !ok {
		return nil, errs.NewErrUnknownColumn(id)
	}
	return c, nil
}

// Select Применяет выбор каждого сегмента пути по порядку. Возвращает отрисованные
// колонки пути и id колонки, следующей за последним выбранным элементом.
// Выбор в колонке stop и далее не применяется.
func (f *Finder) Select(ctx context.Context, fc *Context, path Path, stop string) ([]*View, string, error) {
	views := make([]*View, 0, len(path))
	next := ""

	for _, segment := range path {
		if segment.Column == stop {
			break
		}
		if next != "" && segment.Column != next {
			return nil, "", errs.NewErrInvalidPath(path.String(), "после выбранного элемента ожидается колонка `"+next+"`")
		}

		column, err := f.Column(segment.Column)
		if err != nil {
			return nil, "", err
		}

		view, item, err := column.Select(ctx, fc, segment.Item)
		if err != nil {
			return nil, "", err
		}

		fc.Path = fc.Path.Append(segment.Column, segment.Item)
		views = append(views, view)
		next = item.NextColumn

		logger.Log.Debug("Выбран элемент finder'а",
			logger.String("column", segment.Column),
			logger.String("item", segment.Item),
		)
	}

	return views, next, nil
}

// Render Отрисовывает колонку columnID в контексте пути.
func (f *Finder) Render(ctx context.Context, fc *Context, path Path, columnID, filter string) (*View, error) {
	column, err := f.Column(columnID)
	if err != nil {
		return nil, err
	}

	if _, _, err = f.Select(ctx, fc, path, columnID); err != nil {
		return nil, err
	}
	fc.Path = path

	return column.Render(ctx, fc, filter)
}

// Preview Предпросмотр элемента колонки columnID в контексте пути.
func (f *Finder) Preview(ctx context.Context, fc *Context, path Path, columnID, itemID string) (*Preview, error) {
	column, err := f.Column(columnID)
	if err != nil {
		return nil, err
	}

	if _, _, err = f.Select(ctx, fc, path, columnID); err != nil {
		return nil, err
	}
	fc.Path = path

	return column.Preview(ctx, fc, itemID)
}

// Reveal Колонки всего пути и колонка, следующая за последним выбором.
// Пустой путь отрисовывает только initial.
func (f *Finder) Reveal(ctx context.Context, fc *Context, path Path, initial string) ([]*View, error) {
	views, next, err := f.Select(ctx, fc, path, "")
	if err != nil {
		return nil, err
	}

	if len(path) == 0 {
		next = initial
	}
	if next == "" {
		return views, nil
	}

	column, err := f.Column(next)
	if err != nil {
		return nil, err
	}

	view, err := column.Render(ctx, fc, "")
	if err != nil {
		return nil, err
	}

	return append(views, view), nil
}
