package handlers

import (
	"context"
	"net/http"

	"building_directory/internal/models"
	"building_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseIdentity service.Identity
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdentity, m.parseErr
}

type mockBuildings struct {
	buildingList models.BuildingList
	building     models.Building
	placeList    models.PlaceList
	place        models.Place
	schedule     models.ScheduleSummary
	err          error

	lastCaller      service.Identity
	lastPage        service.PageRequest
	lastGeo         service.GeoDistanceQuery
	lastDisplayName string
	lastBuildingUpn string
	lastFilter      service.PlaceFilter
	lastPlacePage   service.PlacePage
	lastPlaceUpn    string
	lastPlaceType   models.PlaceType
	lastRange       service.ScheduleRange
	lastSearch      string

	listByNameCalls     int
	listByDistanceCalls int
	getByNameCalls      int
	listPlacesCalls     int
	getPlaceCalls       int
	scheduleCalls       int
	searchCalls         int
}

func (m *mockBuildings) ListBuildingsByName(ctx context.Context, caller service.Identity, page service.PageRequest) (models.BuildingList, error) {
	m.listByNameCalls++
	m.lastCaller = caller
	m.lastPage = page
	return m.buildingList, m.err
}

func (m *mockBuildings) ListBuildingsByDistance(ctx context.Context, caller service.Identity, q service.GeoDistanceQuery) (models.BuildingList, error) {
	m.listByDistanceCalls++
	m.lastCaller = caller
	m.lastGeo = q
	return m.buildingList, m.err
}

func (m *mockBuildings) GetBuildingByDisplayName(ctx context.Context, displayName string) (models.Building, error) {
	m.getByNameCalls++
	m.lastDisplayName = displayName
	return m.building, m.err
}

func (m *mockBuildings) ListPlaces(ctx context.Context, buildingUpn string, filter service.PlaceFilter, page service.PlacePage) (models.PlaceList, error) {
	m.listPlacesCalls++
	m.lastBuildingUpn = buildingUpn
	m.lastFilter = filter
	m.lastPlacePage = page
	return m.placeList, m.err
}

func (m *mockBuildings) GetPlaceByUpn(ctx context.Context, upn string, placeType models.PlaceType) (models.Place, error) {
	m.getPlaceCalls++
	m.lastPlaceUpn = upn
	m.lastPlaceType = placeType
	return m.place, m.err
}

func (m *mockBuildings) GetWorkspacesSchedule(ctx context.Context, buildingUpn string, r service.ScheduleRange) (models.ScheduleSummary, error) {
	m.scheduleCalls++
	m.lastBuildingUpn = buildingUpn
	m.lastRange = r
	return m.schedule, m.err
}

func (m *mockBuildings) SearchBuildings(ctx context.Context, searchString string, page service.PageRequest) (models.BuildingList, error) {
	m.searchCalls++
	m.lastSearch = searchString
	m.lastPage = page
	return m.buildingList, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes(Options{})
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
