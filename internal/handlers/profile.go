package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/i18n"
	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// ProfileHandler reads and mutates the installation's profile record.
type ProfileHandler struct {
	Store storage.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store storage.Store) *ProfileHandler {
	return &ProfileHandler{Store: store}
}

func (h *ProfileHandler) profiles(c *gin.Context) (*stores.ProfileStore, bool) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return nil, false
	}
	return stores.NewProfileStore(h.Store, id), true
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}
	utils.Success(c, "Profile fetched", ps.Get())
}

// UpdateProfile handles PUT /profile: replaces the whole record.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if profile.Language != "" && !i18n.IsSupported(profile.Language) {
		utils.BadRequest(c, "Unsupported language: "+profile.Language)
		return
	}
	profile.ServiceAreas = models.SortedAreas(profile.ServiceAreas)

	utils.Success(c, "Profile updated", ps.Replace(&profile))
}

// PatchProfile handles PATCH /profile: shallow-merges the supplied fields
// into the stored record, the way the original saved partial answers from
// each screen.
func (h *ProfileHandler) PatchProfile(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		utils.BadRequest(c, "Request body required")
		return
	}

	profile, err := ps.Patch(body)
	if err != nil {
		utils.BadRequest(c, "Invalid patch payload: "+err.Error())
		return
	}
	utils.Success(c, "Profile updated", profile)
}

// SetLanguageRequest carries a language change.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetLanguage handles POST /profile/language, the equivalent of the
// original's set-language route.
func (h *ProfileHandler) SetLanguage(c *gin.Context) {
	ps, ok := h.profiles(c)
	if !ok {
		return
	}

	var req SetLanguageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !i18n.IsSupported(req.Language) {
		utils.BadRequest(c, "Unsupported language: "+req.Language)
		return
	}

	utils.Success(c, "Language updated", ps.SetLanguage(req.Language))
}
