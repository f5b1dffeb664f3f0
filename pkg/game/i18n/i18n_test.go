package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT_English(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, "moving square", T("WINDOW_TITLE"))
	assert.Equal(t, "edge: wrap  jitter: on", T("HUD_STATUS", "wrap", "on"))
}

func TestT_UnknownKeyPassesThrough(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, "NOT_A_KEY", T("NOT_A_KEY"))
	assert.Equal(t, "100% NOT_A_KEY %s", T("100% NOT_A_KEY %s", "ignored"), "untranslated keys are never used as a format")
}

func TestT_FormatsTranslationOnly(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, "terminal is 10x5, need at least 20x11", T("TERMINAL_TOO_SMALL", 10, 5, 20, 11))
	assert.Equal(t, "edge: %s  jitter: %s", T("HUD_STATUS"), "no args leaves the verbs alone")
}

func TestInit_German(t *testing.T) {
	t.Cleanup(func() { _ = Init(DefaultLocale) })
	require.NoError(t, Init("de"))
	assert.Equal(t, "de", Locale())
	assert.Equal(t, "wanderndes Quadrat", T("WINDOW_TITLE"))
}

func TestInit_UnknownLocaleFallsBack(t *testing.T) {
	t.Cleanup(func() { _ = Init(DefaultLocale) })
	err := Init("xx")
	assert.Error(t, err)
	assert.Equal(t, DefaultLocale, Locale())
	assert.Equal(t, "moving square", T("WINDOW_TITLE"))
}
