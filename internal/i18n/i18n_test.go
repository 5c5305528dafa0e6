package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateResolvesNestedKeys(t *testing.T) {
	c := NewCatalog(map[string]map[string]any{
		"es": {"onboarding": map[string]any{"welcome": "Bienvenido"}},
	})

	assert.Equal(t, "Bienvenido", c.Translate("es", "onboarding.welcome"))
}

func TestTranslateFallsBackToEnglishThenKey(t *testing.T) {
	c := NewCatalog(map[string]map[string]any{
		"en": {"onboarding": map[string]any{"welcome": "Welcome"}},
		"so": {},
	})

	assert.Equal(t, "Welcome", c.Translate("so", "onboarding.welcome"))
	assert.Equal(t, "dashboard.greeting", c.Translate("so", "dashboard.greeting"))
}

func TestTranslateNonStringLeafFallsThrough(t *testing.T) {
	c := NewCatalog(map[string]map[string]any{
		"fr": {"onboarding": map[string]any{"steps": float64(6)}},
		"en": {"onboarding": map[string]any{"steps": "six"}},
	})

	assert.Equal(t, "six", c.Translate("fr", "onboarding.steps"))
}

func TestLoadMissingFilesDegradeToEmptyTables(t *testing.T) {
	c := Load(t.TempDir(), "en")
	assert.Equal(t, "onboarding.welcome", c.Translate("ar", "onboarding.welcome"))
}

func TestLoadHonorsConfiguredFallbackLanguage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "es.json"),
		[]byte(`{"dashboard":{"greeting":"Bienvenido"}}`),
		0o644,
	))

	c := Load(dir, "es")
	assert.Equal(t, "es", c.Fallback())
	// A language with no table of its own falls through to the configured
	// fallback, not straight to the key.
	assert.Equal(t, "Bienvenido", c.Translate("so", "dashboard.greeting"))
}

func TestLoadRejectsUnsupportedFallbackLanguage(t *testing.T) {
	c := Load(t.TempDir(), "de")
	assert.Equal(t, DefaultLanguage, c.Fallback())
}

func TestLoadReadsCatalogFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "uk.json"),
		[]byte(`{"onboarding":{"welcome":"Ласкаво просимо"}}`),
		0o644,
	))

	c := Load(dir, "en")
	assert.Equal(t, "Ласкаво просимо", c.Translate("uk", "onboarding.welcome"))
}

func TestLoadCorruptCatalogDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte("{nope"), 0o644))

	c := Load(dir, "en")
	assert.Equal(t, "any.key", c.Translate("fr", "any.key"))
}

func TestLanguageTableMatchesOriginalPlatform(t *testing.T) {
	require.Len(t, Languages, 8)

	rtl := map[string]bool{}
	for _, l := range Languages {
		rtl[l.Code] = l.RTL
	}
	assert.True(t, rtl["ar"])
	assert.True(t, rtl["am"])
	assert.False(t, rtl["en"])
	assert.True(t, IsSupported("sw"))
	assert.False(t, IsSupported("de"))
}
