package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"building_directory/internal/directory"
	"building_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/error constants to avoid magic strings and typos.
const (
	errListBuildings    = "failed to list buildings"
	errGetBuilding      = "failed to load building"
	errSearchBuildings  = "failed to search buildings"
	errInvalidQueryPref = "invalid query: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps a directory-service failure onto the response.
// Upstream status codes pass through untouched; transport-level failures
// become 502. No retry or recovery happens here.
func (h *Handler) respondServiceError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	var se *directory.StatusError
	if errors.As(err, &se) {
		h.logAndJSONError(c, se.Code, userMsg, logKey, err, kv...)
		return
	}
	h.logAndJSONError(c, http.StatusBadGateway, userMsg, logKey, err, kv...)
}

// pageQuery is the top/skip pagination pair shared by sortByName and
// searchForBuildings. Absent values resolve to the documented defaults.
type pageQuery struct {
	TopCount *int `form:"topCount" binding:"omitempty,min=1"`
	Skip     *int `form:"skip" binding:"omitempty,min=0"`
}

func (q pageQuery) resolve() service.PageRequest {
	page := service.DefaultPage()
	if q.TopCount != nil {
		page.TopCount = *q.TopCount
	}
	if q.Skip != nil {
		page.Skip = *q.Skip
	}
	return page
}

// distanceQuery is the proximity search input. The coordinate string is
// validated here and then forwarded unmodified.
type distanceQuery struct {
	SourceGeoCoordinates string   `form:"sourceGeoCoordinates" binding:"required,geocoords"`
	DistanceFromSource   *float64 `form:"distanceFromSource" binding:"omitempty,gt=0"`
}

// parseGeoCoordinates validates a "lat,long" string.
func parseGeoCoordinates(s string) (lat, long float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat,long\", got %q", s)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude: %w", err)
	}
	long, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude: %w", err)
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude %v out of range [-90,90]", lat)
	}
	if long < -180 || long > 180 {
		return 0, 0, fmt.Errorf("longitude %v out of range [-180,180]", long)
	}
	return lat, long, nil
}

// bindQueryOrBadRequest binds query parameters into dst and writes a 400 on
// failure. Returns false if the request was already handled.
func (h *Handler) bindQueryOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQueryPref + err.Error()})
		return false
	}
	return true
}

// @Summary      List buildings sorted by display name
// @Tags         buildings
// @Produce      json
// @Param        topCount  query  int  false  "Page size (default 10)"
// @Param        skip      query  int  false  "Offset (default 0)"
// @Success      200  {object}  models.BuildingList
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1.0/buildings/sortByName [get]
// @Security     BearerAuth
func (h *Handler) listBuildingsByName(c *gin.Context) {
	var q pageQuery
	if ok := h.bindQueryOrBadRequest(c, &q); !ok {
		return
	}
	out, err := h.services.ListBuildingsByName(c.Request.Context(), h.principal(c), q.resolve())
	if err != nil {
		h.respondServiceError(c, errListBuildings, "buildings_list_by_name_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      List buildings sorted by distance from a point
// @Tags         buildings
// @Produce      json
// @Param        sourceGeoCoordinates  query  string  true   "Source point as lat,long"  example(47.64,-122.14)
// @Param        distanceFromSource    query  number  false  "Max distance in miles"
// @Success      200  {object}  models.BuildingList
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1.0/buildings/sortByDistance [get]
// @Security     BearerAuth
func (h *Handler) listBuildingsByDistance(c *gin.Context) {
	var q distanceQuery
	if ok := h.bindQueryOrBadRequest(c, &q); !ok {
		return
	}
	geo := service.GeoDistanceQuery{
		SourceGeoCoordinates: q.SourceGeoCoordinates,
		DistanceMiles:        q.DistanceFromSource,
	}
	out, err := h.services.ListBuildingsByDistance(c.Request.Context(), h.principal(c), geo)
	if err != nil {
		h.respondServiceError(c, errListBuildings, "buildings_list_by_distance_failed", err,
			"coords", q.SourceGeoCoordinates)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get a building by display name
// @Tags         buildings
// @Produce      json
// @Param        buildingDisplayName  path  string  true  "Building display name"
// @Success      200  {object}  models.Building
// @Failure      404  {object}  map[string]string
// @Router       /api/v1.0/buildings/buildingByName/{buildingDisplayName} [get]
func (h *Handler) getBuildingByDisplayName(c *gin.Context) {
	name := c.Param("buildingDisplayName")
	out, err := h.services.GetBuildingByDisplayName(c.Request.Context(), name)
	if err != nil {
		h.respondServiceError(c, errGetBuilding, "building_get_by_name_failed", err, "name", name)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Search buildings by free text
// @Tags         buildings
// @Produce      json
// @Param        searchString  path   string  true   "Search text"
// @Param        topCount      query  int     false  "Page size (default 10)"
// @Param        skip          query  int     false  "Offset (default 0)"
// @Success      200  {object}  models.BuildingList
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1.0/buildings/searchForBuildings/{searchString} [get]
// @Security     BearerAuth
func (h *Handler) searchBuildings(c *gin.Context) {
	var q pageQuery
	if ok := h.bindQueryOrBadRequest(c, &q); !ok {
		return
	}
	search := c.Param("searchString")
	out, err := h.services.SearchBuildings(c.Request.Context(), search, q.resolve())
	if err != nil {
		h.respondServiceError(c, errSearchBuildings, "buildings_search_failed", err, "search", search)
		return
	}
	c.JSON(http.StatusOK, out)
}
