// Package i18n ports the original platform's translation catalog: eight
// supported languages, nested dotted keys, English fallback, and a fallback
// to the key itself when no catalog has it.
package i18n

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLanguage is the fallback language for lookups and new profiles.
const DefaultLanguage = "en"

// Language describes one supported language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	RTL  bool   `json:"rtl"`
}

// Languages lists every supported language. The RTL set matches the original
// platform's behavior.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Español"},
	{Code: "ar", Name: "العربية", RTL: true},
	{Code: "fr", Name: "Français"},
	{Code: "sw", Name: "Kiswahili"},
	{Code: "uk", Name: "Українська"},
	{Code: "so", Name: "Soomaali"},
	{Code: "am", Name: "አማርኛ", RTL: true},
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Catalog holds the loaded translation tables, one nested JSON object per
// language, plus the deployment's fallback language.
type Catalog struct {
	tables   map[string]map[string]any
	fallback string
}

// Load reads <code>.json for every supported language from dir. A missing or
// unreadable file degrades to an empty table for that language; the failure
// is logged and lookups fall through to the fallback language. An unsupported
// fallback code is replaced with English.
func Load(dir, fallback string) *Catalog {
	if !IsSupported(fallback) {
		fallback = DefaultLanguage
	}
	c := &Catalog{
		tables:   make(map[string]map[string]any, len(Languages)),
		fallback: fallback,
	}
	for _, lang := range Languages {
		table := map[string]any{}
		path := filepath.Join(dir, lang.Code+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("i18n: no catalog for %s (%v), using fallback", lang.Code, err)
		} else if err := json.Unmarshal(data, &table); err != nil {
			log.Printf("i18n: catalog %s does not parse (%v), using fallback", path, err)
			table = map[string]any{}
		}
		c.tables[lang.Code] = table
	}
	return c
}

// NewCatalog wraps pre-built tables with the English fallback, mainly for
// tests.
func NewCatalog(tables map[string]map[string]any) *Catalog {
	if tables == nil {
		tables = map[string]map[string]any{}
	}
	return &Catalog{tables: tables, fallback: DefaultLanguage}
}

// Fallback returns the language used when a profile has none set or a lookup
// misses.
func (c *Catalog) Fallback() string { return c.fallback }

// Translate resolves a dotted key ("onboarding.welcome") in the given
// language, falling back to the catalog's fallback language, then English,
// then the key itself.
func (c *Catalog) Translate(lang, key string) string {
	for _, code := range []string{lang, c.fallback, DefaultLanguage} {
		if v, ok := lookup(c.tables[code], key); ok {
			return v
		}
	}
	return key
}

func lookup(table map[string]any, key string) (string, bool) {
	if table == nil {
		return "", false
	}
	var cur any = table
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}
