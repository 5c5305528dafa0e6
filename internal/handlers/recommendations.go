package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/recommend"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// RecommendationHandler exposes the rule engine. Nothing is cached: every
// request re-reads the profile and re-evaluates the rules.
type RecommendationHandler struct {
	Store storage.Store
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(store storage.Store) *RecommendationHandler {
	return &RecommendationHandler{Store: store}
}

// GetAll handles GET /recommendations: suggestions for every selected area.
func (h *RecommendationHandler) GetAll(c *gin.Context) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return
	}

	profile := stores.NewProfileStore(h.Store, id).Get()
	utils.Success(c, "Recommendations computed", recommend.ForProfile(profile))
}

// GetByArea handles GET /recommendations/:area for a single domain,
// whether or not the user selected it.
func (h *RecommendationHandler) GetByArea(c *gin.Context) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return
	}

	area := models.ServiceArea(c.Param("area"))
	if !models.IsValidServiceArea(area) {
		utils.BadRequest(c, "Unknown service area: "+string(area))
		return
	}

	profile := stores.NewProfileStore(h.Store, id).Get()
	var suggestions []recommend.Suggestion
	switch area {
	case models.AreaHealthcare:
		suggestions = recommend.Healthcare(profile)
	case models.AreaEmployment:
		suggestions = recommend.Employment(profile)
	case models.AreaHousing:
		suggestions = recommend.Housing(profile)
	}

	utils.Success(c, "Recommendations computed", suggestions)
}
