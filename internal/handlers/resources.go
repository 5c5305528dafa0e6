package handlers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/geo"
	"github.com/sanashahul/GamiSMS-sub000/internal/models"
	"github.com/sanashahul/GamiSMS-sub000/internal/resources"
	"github.com/sanashahul/GamiSMS-sub000/internal/utils"
)

// ResourceHandler serves the bundled resource directory and the optional
// nearby-place search. Search failures degrade to an empty list; the UI
// shows a neutral "not found" state, never an error.
type ResourceHandler struct {
	Directory *resources.Directory
	Places    geo.PlaceSearch
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(dir *resources.Directory, places geo.PlaceSearch) *ResourceHandler {
	return &ResourceHandler{Directory: dir, Places: places}
}

// GetResources handles GET /resources with optional area, zip, lat/lon,
// maxKm and language filters.
func (h *ResourceHandler) GetResources(c *gin.Context) {
	q := resources.Query{
		Zip:      c.Query("zip"),
		Language: c.Query("language"),
	}

	if area := c.Query("area"); area != "" {
		if !models.IsValidServiceArea(models.ServiceArea(area)) {
			utils.BadRequest(c, "Unknown service area: "+area)
			return
		}
		q.Area = models.ServiceArea(area)
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			utils.BadRequest(c, "lat and lon must be numbers")
			return
		}
		q.Origin = &geo.Coordinates{Latitude: lat, Longitude: lon}
	}
	if maxStr := c.Query("maxKm"); maxStr != "" {
		maxKm, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			utils.BadRequest(c, "maxKm must be a number")
			return
		}
		q.MaxKm = maxKm
	}

	utils.Success(c, "Resources fetched", h.Directory.Find(c.Request.Context(), q))
}

// GetResourceByID handles GET /resources/:id.
func (h *ResourceHandler) GetResourceByID(c *gin.Context) {
	clinic, found := h.Directory.Get(c.Param("id"))
	if !found {
		utils.NotFound(c, "Resource not found")
		return
	}
	utils.Success(c, "Resource fetched", clinic)
}

// SearchNearby handles GET /resources/nearby?lat=&lon=&query=, the
// best-effort points-of-interest search. Any provider failure yields an
// empty list.
func (h *ResourceHandler) SearchNearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.BadRequest(c, "lat and lon are required numbers")
		return
	}

	places, err := h.Places.Nearby(c.Request.Context(), geo.Coordinates{Latitude: lat, Longitude: lon}, c.Query("query"))
	if err != nil {
		log.Printf("resources: nearby search failed, returning empty list: %v", err)
		places = []geo.Place{}
	}
	utils.Success(c, "Nearby places fetched", places)
}
