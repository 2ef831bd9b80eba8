package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"building_directory/internal/models"
	"building_directory/internal/service"
)

func TestListRooms_UnsetFiltersForwardedAsFalse(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{placeList: models.PlaceList{
		// The mock "directory" holds a room WITH video: an unfiltered
		// listing must still return it, because false means unconstrained.
		Places: []models.Place{{
			Upn:       "room1@contoso.com",
			PlaceType: models.PlaceTypeRoom,
			Features:  models.PlaceFeatures{HasVideo: true},
		}},
	}}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	w := doGet(r, "/api/v1.0/buildings/bldg1@contoso.com/rooms", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if dir.lastBuildingUpn != "bldg1@contoso.com" {
		t.Fatalf("building upn: %q", dir.lastBuildingUpn)
	}
	if dir.lastFilter.PlaceType != models.PlaceTypeRoom {
		t.Fatalf("expected room place type, got %q", dir.lastFilter.PlaceType)
	}
	if dir.lastFilter.Features != (models.PlaceFeatures{}) {
		t.Fatalf("unset filters must all be false, got %+v", dir.lastFilter.Features)
	}
	if dir.lastPlacePage.TopCount != 10 || dir.lastPlacePage.SkipToken != "" {
		t.Fatalf("unexpected paging: %+v", dir.lastPlacePage)
	}

	var out models.PlaceList
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Places) != 1 || !out.Places[0].Features.HasVideo {
		t.Fatalf("room with video dropped from unfiltered listing: %+v", out)
	}
}

func TestListRooms_SetFiltersAndPagingForwarded(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	w := doGet(r, "/api/v1.0/buildings/bldg1/rooms?hasVideo=true&surfaceHub=true&topCount=5&skipToken=tok42", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	want := models.PlaceFeatures{HasVideo: true, SurfaceHub: true}
	if dir.lastFilter.Features != want {
		t.Fatalf("filter features: want %+v, got %+v", want, dir.lastFilter.Features)
	}
	if dir.lastPlacePage.TopCount != 5 || dir.lastPlacePage.SkipToken != "tok42" {
		t.Fatalf("paging not forwarded: %+v", dir.lastPlacePage)
	}
	// Rooms listing has no display-name search parameter.
	if dir.lastFilter.DisplayNameSearch != "" {
		t.Fatalf("rooms listing must not carry a name search, got %q", dir.lastFilter.DisplayNameSearch)
	}
}

func TestListSpaces_NameSearchAndPlaceType(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	w := doGet(r, "/api/v1.0/buildings/bldg1/spaces?displayNameSearchString=focus&isWheelchairAccessible=true", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if dir.lastFilter.PlaceType != models.PlaceTypeSpace {
		t.Fatalf("expected space place type, got %q", dir.lastFilter.PlaceType)
	}
	if dir.lastFilter.DisplayNameSearch != "focus" {
		t.Fatalf("name search not forwarded: %q", dir.lastFilter.DisplayNameSearch)
	}
	if !dir.lastFilter.Features.IsWheelchairAccessible {
		t.Fatalf("accessibility filter dropped: %+v", dir.lastFilter.Features)
	}
}

func TestGetPlaceByUpn_TypeDiscrimination(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{place: models.Place{Upn: "room-upn@contoso.com"}}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	upn := url.PathEscape("room-upn@contoso.com")

	w := doGet(r, "/api/v1.0/buildings/rooms/"+upn, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("rooms status=%d, body=%s", w.Code, w.Body.String())
	}
	if dir.lastPlaceUpn != "room-upn@contoso.com" || dir.lastPlaceType != models.PlaceTypeRoom {
		t.Fatalf("room lookup: upn=%q type=%q", dir.lastPlaceUpn, dir.lastPlaceType)
	}

	// The SAME upn through the spaces route must carry the space type.
	w = doGet(r, "/api/v1.0/buildings/spaces/"+upn, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("spaces status=%d, body=%s", w.Code, w.Body.String())
	}
	if dir.lastPlaceUpn != "room-upn@contoso.com" || dir.lastPlaceType != models.PlaceTypeSpace {
		t.Fatalf("space lookup: upn=%q type=%q", dir.lastPlaceUpn, dir.lastPlaceType)
	}
	if dir.getPlaceCalls != 2 {
		t.Fatalf("expected 2 lookups, got %d", dir.getPlaceCalls)
	}
}

func TestGetWorkspacesSchedule_ForwardsRangeVerbatim(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{schedule: models.ScheduleSummary{
		BuildingUpn: "building-upn",
		Start:       "2024-01-01T00:00:00Z",
		End:         "2024-01-02T00:00:00Z",
		Workspaces: []models.WorkspaceAvailability{
			{Upn: "ws1", ReservedPercent: 37.5, AvailablePercent: 62.5},
		},
	}}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	start := url.QueryEscape("2024-01-01T00:00:00Z")
	end := url.QueryEscape("2024-01-02T00:00:00Z")
	w := doGet(r, "/api/v1.0/buildings/building-upn/schedule?start="+start+"&end="+end, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if dir.lastRange.Start != "2024-01-01T00:00:00Z" || dir.lastRange.End != "2024-01-02T00:00:00Z" {
		t.Fatalf("range modified in flight: %+v", dir.lastRange)
	}
	if dir.lastBuildingUpn != "building-upn" {
		t.Fatalf("building upn: %q", dir.lastBuildingUpn)
	}

	// The percentage structure comes back unmodified.
	var out models.ScheduleSummary
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Workspaces) != 1 || out.Workspaces[0].ReservedPercent != 37.5 || out.Workspaces[0].AvailablePercent != 62.5 {
		t.Fatalf("schedule reshaped: %+v", out)
	}
}

func TestGetWorkspacesSchedule_RequiresStartAndEnd(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	for _, path := range []string{
		"/api/v1.0/buildings/bldg1/schedule",
		"/api/v1.0/buildings/bldg1/schedule?start=2024-01-01T00:00:00Z",
		"/api/v1.0/buildings/bldg1/schedule?end=2024-01-02T00:00:00Z",
	} {
		w := doGet(r, path, "valid")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}
	if dir.scheduleCalls != 0 {
		t.Fatalf("incomplete range must not reach the service, got %d calls", dir.scheduleCalls)
	}
}

func TestListRooms_RejectsBadTopCount(t *testing.T) {
	auth := &mockAuth{parseIdentity: service.Identity{UserID: 1}}
	dir := &mockBuildings{}
	r := newTestRouter(&service.Service{Authorization: auth, Buildings: dir})

	w := doGet(r, "/api/v1.0/buildings/bldg1/rooms?topCount=0", "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if dir.listPlacesCalls != 0 {
		t.Fatalf("invalid paging must not reach the service")
	}
}
