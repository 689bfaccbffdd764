// Package ui Отрисовка страниц консоли во встроенные HTML-шаблоны.
package ui

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(
	template.New("ui").Funcs(sprig.FuncMap()).Funcs(template.FuncMap{
		"selectHref": selectHref,
		"homeHref":   func() string { return place.NewRequest(place.Homepage).Href() },
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// layoutData Данные общего каркаса страницы.
type layoutData struct {
	Title string
	Body  template.HTML
	// подписка страницы на /events и минимальный интервал перезагрузки, секунды
	Poll     bool
	PollTime int
}

// ErrorPage Данные страницы ошибки.
type ErrorPage struct {
	Status  int
	Message string
}

// Render Отрисовывает страницу в каркасе и пишет ответ с заданным статусом.
// Ответ пишется только после успешной отрисовки. Настройки poll и poll-time
// оператора берутся из ctx.
func Render(ctx context.Context, w http.ResponseWriter, status int, page *place.Page) error {
	body, err := execute(page.Template, page.Data)
	if err != nil {
		return err
	}

	poll, pollTime := settings.PollingFromContext(ctx)
	out, err := execute("layout", layoutData{
		Title:    page.Title,
		Body:     body,
		Poll:     poll,
		PollTime: int(pollTime / time.Second),
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err = w.Write([]byte(out)); err != nil {
		logger.Log.Debug("Не удалось записать страницу", logger.String("err", err.Error()))
	}
	return nil
}

// RenderError Страница ошибки. Если не отрисовалась даже она, отдаётся текст.
func RenderError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	page := &place.Page{
		Title:    http.StatusText(status),
		Template: "error",
		Data:     ErrorPage{Status: status, Message: message},
	}
	if err := Render(ctx, w, status, page); err != nil {
		logger.Log.Error("Ошибка отрисовки страницы ошибки", logger.String("err", err.Error()))
		http.Error(w, message, status)
	}
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("не удалось отрисовать шаблон %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// selectHref Ссылка на страницу finder'а с выбором item в колонке index.
// Выборы левее колонки берутся из активных строк предыдущих колонок.
func selectHref(token string, views []*finder.View, index int, item string) string {
	path := finder.Path{}
	for i := 0; i < index && i < len(views); i++ {
		row, ok := views[i].Selected()
		if !ok {
			break
		}
		path = path.Append(views[i].ID, row.ID)
	}
	if index < len(views) {
		path = path.Append(views[index].ID, item)
	}
	return place.NewRequest(token).With(place.PathParam, path.String()).Href()
}
