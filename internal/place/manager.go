package place

import (
	"context"
	"sync"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

//go:generate mockgen -destination=mocks/mock_presenter.go -package=mocks . Presenter

// Presenter Страница консоли, привязанная к name token'у.
type Presenter interface {
	NameToken() string
	// PrepareFromRequest Готовит данные страницы по параметрам запроса.
	PrepareFromRequest(ctx context.Context, req Request) (*Page, error)
}

// Page Подготовленная страница: шаблон и данные для него.
type Page struct {
	Title    string
	Template string
	Data     any
}

// Manager Сопоставляет name token'ы и страницы.
type Manager struct {
	mu           sync.RWMutex
	presenters   map[string]Presenter
	defaultToken string
}

// NewManager Неизвестные token'ы открывают страницу defaultToken.
func NewManager(defaultToken string, presenters ...Presenter) *Manager {
	m := &Manager{presenters: make(map[string]Presenter), defaultToken: defaultToken}
	for _, p := range presenters {
		m.Register(p)
	}
	return m
}

// Register Регистрирует страницу.
func (m *Manager) Register(p Presenter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.presenters[p.NameToken()] = p
}

// Resolve Страница для запроса и фактически открытый запрос.
func (m *Manager) Resolve(req Request) (Presenter, Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if p, ok := m.presenters[req.NameToken]; ok {
		return p, req, nil
	}

	logger.Log.Warn("Неизвестный name token, открываем страницу по умолчанию",
		logger.String("token", req.NameToken),
		logger.String("default", m.defaultToken),
	)

	if p, ok := m.presenters[m.defaultToken]; ok {
		return p, NewRequest(m.defaultToken), nil
	}

	return nil, req, errs.NewErrUnknownPlace(req.NameToken)
}

// RevealPlace Находит страницу и готовит её.
func (m *Manager) RevealPlace(ctx context.Context, req Request) (*Page, Request, error) {
	p, effective, err := m.Resolve(req)
	if err != nil {
		return nil, req, err
	}

	page, err := p.PrepareFromRequest(ctx, effective)
	if err != nil {
		return nil, effective, err
	}

	return page, effective, nil
}
