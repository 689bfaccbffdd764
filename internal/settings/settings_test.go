package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
)

// TestLoadDefaults Без сохранённых значений используются значения по умолчанию.
func TestLoadDefaults(t *testing.T) {
	s := New()
	s.Load(Title, nil, DefaultTitle)
	s.Load(PageSize, nil, DefaultPageSize)
	s.Load(Poll, nil, true)
	s.Load(RunAs, nil, nil)

	assert.Equal(t, DefaultTitle, s.Get(Title).String())
	assert.Equal(t, 10, s.Get(PageSize).Int())
	assert.True(t, s.Get(Poll).Bool())
	assert.False(t, s.Get(RunAs).IsDefined())
	assert.Nil(t, s.Get(RunAs).Set())
}

// TestLoadStored Сохранённое значение важнее значения по умолчанию, некорректное - игнорируется.
func TestLoadStored(t *testing.T) {
	stored := map[Key]string{
		PageSize: "25",
		PollTime: "-1",
		RunAs:    "Monitor, Operator,Monitor",
	}

	s := New()
	s.Load(PageSize, stored, DefaultPageSize)
	s.Load(PollTime, stored, DefaultPollTime)
	s.Load(RunAs, stored, nil)

	assert.Equal(t, 25, s.Get(PageSize).Int())
	assert.Equal(t, DefaultPollTime, s.Get(PollTime).Int())
	assert.Equal(t, []string{"Monitor", "Operator"}, s.Get(RunAs).Set())
}

// TestSetValidation Проверка значений при изменении.
func TestSetValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		value   string
		wantErr bool
	}{
		{name: "корректный page-size", key: PageSize, value: "50"},
		{name: "нулевой page-size", key: PageSize, value: "0", wantErr: true},
		{name: "не число", key: PollTime, value: "ten", wantErr: true},
		{name: "poll", key: Poll, value: "false"},
		{name: "poll не bool", key: Poll, value: "maybe", wantErr: true},
		{name: "пустой заголовок", key: Title, value: " ", wantErr: true},
		{name: "run-as пустой", key: RunAs, value: ""},
		{name: "неизвестный ключ", key: Key("theme"), value: "dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestParseKey Неизвестный ключ даёт ErrUnknownSetting.
func TestParseKey(t *testing.T) {
	k, err := ParseKey("poll-time")
	require.NoError(t, err)
	assert.Equal(t, PollTime, k)

	_, err = ParseKey("theme")
	var unknown *errs.ErrUnknownSetting
	assert.True(t, errors.As(err, &unknown))
}

// TestMarshalJSON Значения сериализуются с типами.
func TestMarshalJSON(t *testing.T) {
	s := New()
	s.Load(Title, nil, DefaultTitle)
	s.Load(CollectUserData, nil, false)
	s.Load(PageSize, nil, DefaultPageSize)
	require.NoError(t, s.Set(RunAs, "Monitor"))

	b, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title":"Management Console",
		"collect-user-data":false,
		"locale":null,
		"page-size":10,
		"poll":null,
		"poll-time":null,
		"run-as":["Monitor"]
	}`, string(b))
}
