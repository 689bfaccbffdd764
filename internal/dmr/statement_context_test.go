package dmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddressTemplateResolveDomain Подстановка выбранных значений в domain-режиме.
func TestAddressTemplateResolveDomain(t *testing.T) {
	sc := NewStatementContext(false)
	sc.Select(SelectedProfile, "full")
	sc.Select(SelectedHost, "master")

	a, err := AddressTemplate("{selected.profile}/subsystem=*").Resolve(sc, "ee")
	require.NoError(t, err)
	assert.Equal(t, "/profile=full/subsystem=ee", a.String())

	a, err = AddressTemplate("{selected.host}/server-config=*").Resolve(sc)
	require.NoError(t, err)
	assert.Equal(t, "/host=master/server-config=*", a.String())

	assert.Equal(t, "master", sc.SelectedHost())
	assert.Equal(t, "full", sc.SelectedProfile())
	assert.Equal(t, "", sc.SelectedServerGroup())
}

// TestAddressTemplateResolveStandalone В standalone профиль из шаблона опускается.
func TestAddressTemplateResolveStandalone(t *testing.T) {
	sc := NewStatementContext(true)

	a, err := AddressTemplate("{selected.profile}/subsystem=*").Resolve(sc, "logging")
	require.NoError(t, err)
	assert.Equal(t, "/subsystem=logging", a.String())
	assert.True(t, sc.Standalone())
}

// TestAddressTemplateResolveErrors Не выбрано значение или сегмент некорректен.
func TestAddressTemplateResolveErrors(t *testing.T) {
	sc := NewStatementContext(false)

	_, err := AddressTemplate("{selected.host}/server-config=*").Resolve(sc)
	assert.Error(t, err)

	sc.Select(SelectedHost, "")
	_, err = AddressTemplate("{selected.host}").Resolve(sc)
	assert.Error(t, err, "пустое значение не считается выбранным")

	_, err = AddressTemplate("/interface").Resolve(sc)
	assert.Error(t, err)

	a, err := AddressTemplate("/").Resolve(sc)
	require.NoError(t, err)
	assert.True(t, a.IsRoot())
}
