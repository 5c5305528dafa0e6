package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanashahul/GamiSMS-sub000/internal/config"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// InstallHandler issues installation tokens. There is no account system: an
// installation is an anonymous UUID, and the token just lets a device get
// back to its own data.
type InstallHandler struct {
	Cfg *config.Config
}

// NewInstallHandler creates a new InstallHandler.
func NewInstallHandler(cfg *config.Config) *InstallHandler {
	return &InstallHandler{Cfg: cfg}
}

// InstallRequest optionally carries an existing installation ID so a device
// can re-issue a token after an expiry without losing its data.
type InstallRequest struct {
	InstallationID string `json:"installationId" binding:"omitempty,uuid"`
}

// Register handles POST /install: mints a new installation ID (or re-signs
// the supplied one) and returns a bearer token for it.
func (h *InstallHandler) Register(c *gin.Context) {
	var req InstallRequest
	// The body is optional; an empty body means a brand new installation.
	_ = c.ShouldBindJSON(&req)

	installationID := req.InstallationID
	if installationID == "" {
		installationID = uuid.New().String()
	} else if _, err := uuid.Parse(installationID); err != nil {
		utils.BadRequest(c, "Invalid installation ID format")
		return
	}

	token, err := utils.GenerateInstallationToken(installationID, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue installation token: "+err.Error())
		return
	}

	utils.Created(c, "Installation registered", gin.H{
		"installationId": installationID,
		"token":          token,
	})
}
