package dmr_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

func newManagementServer(t *testing.T, status int, response string, check func(r *http.Request, body map[string]any)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		if check != nil {
			check(r, body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv
}

// TestHTTPDispatcherExecuteSuccess Успешная операция возвращает result.
func TestHTTPDispatcherExecuteSuccess(t *testing.T) {
	srv := newManagementServer(t, http.StatusOK, `{"outcome":"success","result":["master","slave"]}`,
		func(r *http.Request, body map[string]any) {
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "admin", user)
			assert.Equal(t, "secret", pass)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "read-children-names", body["operation"])
			assert.Equal(t, "host", body["child-type"])
			assert.NotContains(t, body, "operation-headers")
		})

	d := dmr.NewHTTPDispatcher(srv.URL, "admin", "secret", 5*time.Second)
	op := dmr.NewOperation(dmr.ReadChildrenNames, dmr.Root).Param(dmr.ChildType, dmr.Host).Build()

	result, err := d.Execute(context.Background(), op)
	require.NoError(t, err)

	list := result.AsList()
	require.Len(t, list, 2)
	assert.Equal(t, "master", list[0].AsString())
}

// TestHTTPDispatcherRunAs Роли из контекста уходят в operation-headers.
func TestHTTPDispatcherRunAs(t *testing.T) {
	srv := newManagementServer(t, http.StatusOK, `{"outcome":"success","result":{}}`,
		func(r *http.Request, body map[string]any) {
			headers, ok := body["operation-headers"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, []any{"Monitor"}, headers["roles"])
		})

	d := dmr.NewHTTPDispatcher(srv.URL, "", "", 5*time.Second)
	ctx := dmr.WithRunAs(context.Background(), []string{"Monitor"})

	_, err := d.Execute(ctx, dmr.NewOperation(dmr.ReadResource, dmr.Root).Build())
	require.NoError(t, err)
}

// TestHTTPDispatcherExecuteFailed outcome=failed превращается в ErrOperationFailed.
func TestHTTPDispatcherExecuteFailed(t *testing.T) {
	srv := newManagementServer(t, http.StatusInternalServerError,
		`{"outcome":"failed","failure-description":"WFLYCTL0216: Management resource not found"}`, nil)

	d := dmr.NewHTTPDispatcher(srv.URL, "", "", 5*time.Second)

	_, err := d.Execute(context.Background(), dmr.NewOperation(dmr.ReadResource, dmr.NewAddress("host", "missing")).Build())
	require.Error(t, err)

	var opErr *errs.ErrOperationFailed
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, dmr.ReadResource, opErr.Operation)
	assert.Equal(t, "/host=missing", opErr.Address)
	assert.Contains(t, opErr.Description, "WFLYCTL0216")
}

// TestHTTPDispatcherTransportErrors Неожиданный статус и мусор в ответе.
func TestHTTPDispatcherTransportErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
	}{
		{name: "401", status: http.StatusUnauthorized, response: `{}`},
		{name: "не JSON", status: http.StatusOK, response: `<html>`},
		{name: "нет outcome", status: http.StatusOK, response: `{"result":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newManagementServer(t, tt.status, tt.response, nil)
			d := dmr.NewHTTPDispatcher(srv.URL, "", "", 5*time.Second)

			_, err := d.Execute(context.Background(), dmr.NewOperation(dmr.ReadResource, dmr.Root).Build())

			var dErr *errs.ErrDispatcher
			assert.True(t, errors.As(err, &dErr))
		})
	}
}

// TestHTTPDispatcherComposite Пакет с проваленным шагом всё равно возвращает шаги.
func TestHTTPDispatcherComposite(t *testing.T) {
	srv := newManagementServer(t, http.StatusInternalServerError,
		`{"outcome":"failed","failure-description":"step failed","result":{
			"step-1":{"outcome":"success","result":["master"]},
			"step-2":{"outcome":"failed","failure-description":"nope"}}}`,
		func(r *http.Request, body map[string]any) {
			assert.Equal(t, "composite", body["operation"])
			steps, ok := body["steps"].([]any)
			require.True(t, ok)
			assert.Len(t, steps, 2)
		})

	d := dmr.NewHTTPDispatcher(srv.URL, "", "", 5*time.Second)
	c := dmr.NewComposite(
		dmr.NewOperation(dmr.ReadChildrenNames, dmr.Root).Param(dmr.ChildType, dmr.Host).Build(),
		dmr.NewOperation(dmr.ReadResource, dmr.NewAddress("host", "gone")).Build(),
	)

	result, err := d.ExecuteComposite(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Size())
	assert.False(t, result.Step(0).IsFailure())
	assert.True(t, result.Step(1).IsFailure())
}

// TestHTTPDispatcherCompositeFailedWithoutResult Провал пакета без result - ошибка.
func TestHTTPDispatcherCompositeFailedWithoutResult(t *testing.T) {
	srv := newManagementServer(t, http.StatusInternalServerError,
		`{"outcome":"failed","failure-description":"denied"}`, nil)

	d := dmr.NewHTTPDispatcher(srv.URL, "", "", 5*time.Second)
	c := dmr.NewComposite(dmr.NewOperation(dmr.ReadResource, dmr.Root).Build())

	_, err := d.ExecuteComposite(context.Background(), c)

	var opErr *errs.ErrOperationFailed
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "denied", opErr.Description)
}

// TestHTTPDispatcherEmptyComposite Пустой пакет не отправляется.
func TestHTTPDispatcherEmptyComposite(t *testing.T) {
	d := dmr.NewHTTPDispatcher("http://127.0.0.1:1/management", "", "", time.Second)

	result, err := d.ExecuteComposite(context.Background(), dmr.NewComposite())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Size())
}
