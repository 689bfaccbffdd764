package columns

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

//go:embed previews
var previewFS embed.FS

var previewTemplates = template.Must(
	template.New("previews").Funcs(sprig.FuncMap()).ParseFS(previewFS, "previews/*.tmpl"),
)

// staticText Встроенный HTML-текст предпросмотра previews/<name>.html.
func staticText(name string) (template.HTML, bool) {
	b, err := previewFS.ReadFile("previews/" + name + ".html")
	if err != nil {
		return "", false
	}
	return template.HTML(b), true
}

// staticPreview Предпросмотр из встроенного текста; без текста только заголовок.
func staticPreview(header, name string) *finder.Preview {
	text, _ := staticText(name)
	return finder.NewPreview(header, text)
}

func renderPreview(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := previewTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("не удалось отрисовать предпросмотр %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// serverHolder Хост или группа серверов.
type serverHolder interface {
	ServersWithStatus(statuses ...runtime.ServerConfigStatus) []*runtime.Server
}

// serversPreview Предпросмотр хоста или группы: описание и сводка статусов серверов.
func serversPreview(header, name string, holder serverHolder) (*finder.Preview, error) {
	description, err := renderPreview(name, holder)
	if err != nil {
		return nil, err
	}

	summary, err := renderPreview("server-status", map[string]int{
		"Started": len(holder.ServersWithStatus(runtime.StatusStarted, runtime.StatusStarting)),
		"Stopped": len(holder.ServersWithStatus(runtime.StatusStopped, runtime.StatusStopping, runtime.StatusDisabled)),
		"Failed":  len(holder.ServersWithStatus(runtime.StatusFailed)),
	})
	if err != nil {
		return nil, err
	}

	return finder.NewElementsPreview(header, description, summary), nil
}
