package place_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/place/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

func presenter(ctrl *gomock.Controller, token string) *mocks.MockPresenter {
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().NameToken().Return(token).AnyTimes()
	return p
}

// TestRevealPlace Проверяет выбор страницы по name token'у.
func TestRevealPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := presenter(ctrl, place.Homepage)
	configuration := presenter(ctrl, place.Configuration)
	manager := place.NewManager(place.Homepage, home, configuration)

	tests := []struct {
		name      string
		req       place.Request
		setupMock func()
		wantToken string
		wantTitle string
	}{
		{
			name: "известный token",
			req:  place.NewRequest(place.Configuration).With(place.PathParam, "configuration~subsystems"),
			setupMock: func() {
				configuration.EXPECT().
					PrepareFromRequest(gomock.Any(), place.NewRequest(place.Configuration).With(place.PathParam, "configuration~subsystems")).
					Return(&place.Page{Title: "Configuration"}, nil)
			},
			wantToken: place.Configuration,
			wantTitle: "Configuration",
		},
		{
			name: "неизвестный token открывает страницу по умолчанию без параметров",
			req:  place.NewRequest("datasources").With("x", "y"),
			setupMock: func() {
				home.EXPECT().
					PrepareFromRequest(gomock.Any(), place.NewRequest(place.Homepage)).
					Return(&place.Page{Title: "Home"}, nil)
			},
			wantToken: place.Homepage,
			wantTitle: "Home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			page, effective, err := manager.RevealPlace(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, effective.NameToken)
			assert.Equal(t, tt.wantTitle, page.Title)
		})
	}
}

// TestRevealPlaceErrors Ошибки страницы и отсутствие страницы по умолчанию.
func TestRevealPlaceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configuration := presenter(ctrl, place.Configuration)
	configuration.EXPECT().PrepareFromRequest(gomock.Any(), gomock.Any()).Return(nil, errors.New("dispatcher down"))

	manager := place.NewManager(place.Homepage, configuration)

	_, _, err := manager.RevealPlace(context.Background(), place.NewRequest(place.Configuration))
	assert.ErrorContains(t, err, "dispatcher down")

	_, _, err = manager.RevealPlace(context.Background(), place.NewRequest("unknown"))
	var unknown *errs.ErrUnknownPlace
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "unknown", unknown.NameToken)
}
