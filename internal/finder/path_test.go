package finder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
)

// TestParsePath Проверяет разбор пути finder'а.
func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "пустой путь", input: "  ", want: Path{}},
		{name: "один сегмент", input: "configuration~subsystems", want: Path{{Column: "configuration", Item: "subsystems"}}},
		{
			name:  "несколько сегментов",
			input: "domain-browse-by~hosts!host~master!server~master/server-one",
			want: Path{
				{Column: "domain-browse-by", Item: "hosts"},
				{Column: "host", Item: "master"},
				{Column: "server", Item: "master/server-one"},
			},
		},
		{name: "нет разделителя", input: "configuration", wantErr: true},
		{name: "пустой элемент", input: "configuration~", wantErr: true},
		{name: "пустой сегмент", input: "a~b!!c~d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)

			if tt.wantErr {
				var pathErr *errs.ErrInvalidPath
				assert.True(t, errors.As(err, &pathErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.TrimSpace(tt.input), got.String())
		})
	}
}

// TestPathOperations Проверяет Append, Without, First и Item.
func TestPathOperations(t *testing.T) {
	base, err := ParsePath("domain-browse-by~hosts!host~master")
	require.NoError(t, err)

	extended := base.Append("server", "master/server-one")
	assert.Len(t, base, 2, "исходный путь не меняется")
	assert.Equal(t, "domain-browse-by~hosts!host~master!server~master/server-one", extended.String())

	assert.Equal(t, "host~master!server~master/server-one", extended.Without("domain-browse-by").String())

	first, ok := extended.First()
	assert.True(t, ok)
	assert.Equal(t, "hosts", first.Item)

	_, ok = Path{}.First()
	assert.False(t, ok)

	item, ok := extended.Item("host")
	assert.True(t, ok)
	assert.Equal(t, "master", item)

	_, ok = extended.Item("profile")
	assert.False(t, ok)
}

// TestAsID Проверяет построение id из заголовка.
func TestAsID(t *testing.T) {
	assert.Equal(t, "socket-bindings", AsID("Socket Bindings"))
	assert.Equal(t, "system-properties", AsID("  System  Properties "))
	assert.Equal(t, "server-groups", AsID("Server Groups"))
	assert.Equal(t, "ee", AsID("EE"))
	assert.Equal(t, "web-services", AsID("Web/Services!"))
	assert.Equal(t, "", AsID(""))
}
