package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/i18n"
	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/recommend"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
	"github.com/sanashahul/GamiSMS-sub000/internal/stores"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// DashboardHandler assembles the dashboard payload the original rendered
// server-side: profile, fresh recommendations and upcoming reminders.
type DashboardHandler struct {
	Store   storage.Store
	Catalog *i18n.Catalog
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store storage.Store, catalog *i18n.Catalog) *DashboardHandler {
	return &DashboardHandler{Store: store, Catalog: catalog}
}

// GetDashboard handles GET /dashboard. Recommendations are recomputed on
// every render, never cached.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	id, ok := middleware.GetInstallationIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Installation not identified")
		return
	}

	profile := stores.NewProfileStore(h.Store, id).Get()
	reminders := stores.NewAppointmentStore(h.Store, id)

	lang := profile.Language
	if lang == "" {
		lang = h.Catalog.Fallback()
	}

	utils.Success(c, "Dashboard assembled", gin.H{
		"profile":         profile,
		"greeting":        h.Catalog.Translate(lang, "dashboard.greeting"),
		"recommendations": recommend.ForProfile(profile),
		"upcoming":        reminders.Upcoming(time.Now()),
	})
}
