package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/i18n"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// LanguageHandler lists supported languages and resolves translation keys.
type LanguageHandler struct {
	Catalog *i18n.Catalog
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(catalog *i18n.Catalog) *LanguageHandler {
	return &LanguageHandler{Catalog: catalog}
}

// GetLanguages handles GET /languages: every supported language with its
// native name and text direction.
func (h *LanguageHandler) GetLanguages(c *gin.Context) {
	utils.Success(c, "Languages fetched", i18n.Languages)
}

// Translate handles GET /translations?lang=&key=: dotted-key lookup with
// English fallback, falling back to the key itself when nothing matches.
func (h *LanguageHandler) Translate(c *gin.Context) {
	lang := c.DefaultQuery("lang", h.Catalog.Fallback())
	key := c.Query("key")
	if key == "" {
		utils.BadRequest(c, "key is required")
		return
	}
	if !i18n.IsSupported(lang) {
		utils.BadRequest(c, "Unsupported language: "+lang)
		return
	}

	utils.Success(c, "Translation resolved", gin.H{
		"lang":  lang,
		"key":   key,
		"value": h.Catalog.Translate(lang, key),
	})
}
