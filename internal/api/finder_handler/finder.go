package finder_handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

// Параметры запросов к finder'у.
const (
	tokenParam  = "token"
	filterParam = "filter"
	itemParam   = "item"
)

// FinderHandler Колонки finder'а в JSON.
type FinderHandler struct {
	env    *environment.Environment
	finder *finder.Finder
}

// NewFinderHandler Конструктор FinderHandler.
func NewFinderHandler(env *environment.Environment, f *finder.Finder) *FinderHandler {
	return &FinderHandler{
		env:    env,
		finder: f,
	}
}

// context Контекст finder'а для запроса. Страница берётся из параметра token.
func (h *FinderHandler) context(r *http.Request) (*finder.Context, finder.Path, error) {
	path, err := finder.ParsePath(r.URL.Query().Get(place.PathParam))
	if err != nil {
		return nil, nil, err
	}

	token := r.URL.Query().Get(tokenParam)
	if token == "" {
		token = place.Configuration
	}

	return finder.NewContext(token, dmr.NewStatementContext(h.env.IsStandalone())), path, nil
}

// RenderColumn Отрисовывает колонку в контексте пути с учётом фильтра.
func (h *FinderHandler) RenderColumn(w http.ResponseWriter, r *http.Request) {
	fc, path, err := h.context(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	view, err := h.finder.Render(r.Context(), fc, path, chi.URLParam(r, "column"), r.URL.Query().Get(filterParam))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view)
}

// PreviewItem Предпросмотр элемента колонки.
func (h *FinderHandler) PreviewItem(w http.ResponseWriter, r *http.Request) {
	fc, path, err := h.context(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	item := r.URL.Query().Get(itemParam)
	if item == "" {
		response.ErrorJSON(w, http.StatusBadRequest, "Не указан элемент колонки")
		return
	}

	preview, err := h.finder.Preview(r.Context(), fc, path, chi.URLParam(r, "column"), item)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if preview == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response.JSON(w, http.StatusOK, preview)
}
