package handlers

import (
	"net/http"

	"building_directory/internal/models"
	"building_directory/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListPlaces  = "failed to list places"
	errGetPlace    = "failed to load place"
	errGetSchedule = "failed to load schedule"
)

// placeListQuery is the room/space listing input. Boolean flags default to
// false, which means "do not filter on this attribute" — never "require
// the feature to be absent".
type placeListQuery struct {
	TopCount                *int   `form:"topCount" binding:"omitempty,min=1"`
	SkipToken               string `form:"skipToken"`
	HasVideo                bool   `form:"hasVideo"`
	HasAudio                bool   `form:"hasAudio"`
	HasDisplay              bool   `form:"hasDisplay"`
	IsWheelchairAccessible  bool   `form:"isWheelchairAccessible"`
	FullyEnclosed           bool   `form:"fullyEnclosed"`
	SurfaceHub              bool   `form:"surfaceHub"`
	WhiteboardCamera        bool   `form:"whiteboardCamera"`
	DisplayNameSearchString string `form:"displayNameSearchString"`
}

func (q placeListQuery) page() service.PlacePage {
	top := service.DefaultTopCount
	if q.TopCount != nil {
		top = *q.TopCount
	}
	return service.PlacePage{TopCount: top, SkipToken: q.SkipToken}
}

// filter assembles the place filter. Display-name search is only part of
// the spaces listing surface, so rooms pass withNameSearch=false.
func (q placeListQuery) filter(placeType models.PlaceType, withNameSearch bool) service.PlaceFilter {
	f := service.PlaceFilter{
		PlaceType: placeType,
		Features: models.PlaceFeatures{
			HasVideo:               q.HasVideo,
			HasAudio:               q.HasAudio,
			HasDisplay:             q.HasDisplay,
			IsWheelchairAccessible: q.IsWheelchairAccessible,
			FullyEnclosed:          q.FullyEnclosed,
			SurfaceHub:             q.SurfaceHub,
			WhiteboardCamera:       q.WhiteboardCamera,
		},
	}
	if withNameSearch {
		f.DisplayNameSearch = q.DisplayNameSearchString
	}
	return f
}

// listPlacesOfBuilding is the shared body of the rooms and spaces listings.
func (h *Handler) listPlacesOfBuilding(c *gin.Context, placeType models.PlaceType, withNameSearch bool, logKey string) {
	var q placeListQuery
	if ok := h.bindQueryOrBadRequest(c, &q); !ok {
		return
	}
	buildingUpn := c.Param("buildingUpn")
	out, err := h.services.ListPlaces(c.Request.Context(), buildingUpn, q.filter(placeType, withNameSearch), q.page())
	if err != nil {
		h.respondServiceError(c, errListPlaces, logKey, err, "building_upn", buildingUpn)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      List rooms of a building
// @Tags         places
// @Produce      json
// @Param        buildingUpn  path   string  true   "Building UPN"
// @Param        topCount     query  int     false  "Page size (default 10)"
// @Param        skipToken    query  string  false  "Opaque next-page cursor"
// @Param        hasVideo     query  bool    false  "Require video (false = unconstrained)"
// @Param        hasAudio     query  bool    false  "Require audio (false = unconstrained)"
// @Param        hasDisplay   query  bool    false  "Require display (false = unconstrained)"
// @Param        isWheelchairAccessible  query  bool  false  "Require accessibility (false = unconstrained)"
// @Param        fullyEnclosed     query  bool  false  "Require full enclosure (false = unconstrained)"
// @Param        surfaceHub        query  bool  false  "Require a Surface Hub (false = unconstrained)"
// @Param        whiteboardCamera  query  bool  false  "Require a whiteboard camera (false = unconstrained)"
// @Success      200  {object}  models.PlaceList
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1.0/buildings/{buildingUpn}/rooms [get]
// @Security     BearerAuth
func (h *Handler) listRoomsOfBuilding(c *gin.Context) {
	h.listPlacesOfBuilding(c, models.PlaceTypeRoom, false, "rooms_list_failed")
}

// @Summary      List workspaces of a building
// @Tags         places
// @Produce      json
// @Param        buildingUpn              path   string  true   "Building UPN"
// @Param        topCount                 query  int     false  "Page size (default 10)"
// @Param        skipToken                query  string  false  "Opaque next-page cursor"
// @Param        displayNameSearchString  query  string  false  "Substring match on display name"
// @Param        hasVideo                 query  bool    false  "Require video (false = unconstrained)"
// @Success      200  {object}  models.PlaceList
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1.0/buildings/{buildingUpn}/spaces [get]
// @Security     BearerAuth
func (h *Handler) listSpacesOfBuilding(c *gin.Context) {
	h.listPlacesOfBuilding(c, models.PlaceTypeSpace, true, "spaces_list_failed")
}

// @Summary      Get a room by UPN
// @Tags         places
// @Produce      json
// @Param        roomUpn  path  string  true  "Room UPN"
// @Success      200  {object}  models.Place
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1.0/buildings/rooms/{roomUpn} [get]
// @Security     BearerAuth
func (h *Handler) getRoomByUpn(c *gin.Context) {
	h.getPlaceByUpn(c, c.Param("roomUpn"), models.PlaceTypeRoom)
}

// @Summary      Get a workspace by UPN
// @Tags         places
// @Produce      json
// @Param        spaceUpn  path  string  true  "Workspace UPN"
// @Success      200  {object}  models.Place
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1.0/buildings/spaces/{spaceUpn} [get]
// @Security     BearerAuth
func (h *Handler) getWorkspaceByUpn(c *gin.Context) {
	h.getPlaceByUpn(c, c.Param("spaceUpn"), models.PlaceTypeSpace)
}

// getPlaceByUpn is the shared body of the room and workspace lookups. The
// place type always travels with the UPN; the two must never be conflated.
func (h *Handler) getPlaceByUpn(c *gin.Context, upn string, placeType models.PlaceType) {
	out, err := h.services.GetPlaceByUpn(c.Request.Context(), upn, placeType)
	if err != nil {
		h.respondServiceError(c, errGetPlace, "place_get_failed", err, "upn", upn, "place_type", placeType)
		return
	}
	c.JSON(http.StatusOK, out)
}

// scheduleQuery bounds a workspace schedule request. Both ends are required
// and forwarded verbatim; their format is owned by the directory service.
type scheduleQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// @Summary      Get reserved/available percentages for a building's workspaces
// @Tags         places
// @Produce      json
// @Param        buildingUpn  path   string  true  "Building UPN"
// @Param        start        query  string  true  "Range start"  example(2024-01-01T00:00:00Z)
// @Param        end          query  string  true  "Range end"    example(2024-01-02T00:00:00Z)
// @Success      200  {object}  models.ScheduleSummary
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1.0/buildings/{buildingUpn}/schedule [get]
// @Security     BearerAuth
func (h *Handler) getWorkspacesSchedule(c *gin.Context) {
	var q scheduleQuery
	if ok := h.bindQueryOrBadRequest(c, &q); !ok {
		return
	}
	buildingUpn := c.Param("buildingUpn")
	out, err := h.services.GetWorkspacesSchedule(c.Request.Context(), buildingUpn, service.ScheduleRange{
		Start: q.Start,
		End:   q.End,
	})
	if err != nil {
		h.respondServiceError(c, errGetSchedule, "schedule_get_failed", err, "building_upn", buildingUpn)
		return
	}
	c.JSON(http.StatusOK, out)
}
