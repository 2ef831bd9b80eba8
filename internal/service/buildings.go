package service

import (
	"context"

	"building_directory/internal/models"
)

// directoryAPI is the slice of the upstream client this service needs.
// Declared here so tests can substitute a fake.
type directoryAPI interface {
	ListBuildingsByName(ctx context.Context, callerUpn string, top, skip int) (models.BuildingList, error)
	ListBuildingsByDistance(ctx context.Context, callerUpn, coords string, maxMiles *float64) (models.BuildingList, error)
	GetBuildingByDisplayName(ctx context.Context, displayName string) (models.Building, error)
	ListPlaces(ctx context.Context, buildingUpn string, placeType models.PlaceType, features models.PlaceFeatures, nameSearch string, top int, skipToken string) (models.PlaceList, error)
	GetPlaceByUpn(ctx context.Context, upn string, placeType models.PlaceType) (models.Place, error)
	GetWorkspacesSchedule(ctx context.Context, buildingUpn, start, end string) (models.ScheduleSummary, error)
	SearchBuildings(ctx context.Context, searchString string, top, skip int) (models.BuildingList, error)
}

// BuildingsService is a thin facade over the upstream directory API. It owns
// no data and computes nothing: pagination, distance search, and
// availability percentages all happen upstream.
type BuildingsService struct {
	dir directoryAPI
}

func NewBuildingsService(dir directoryAPI) *BuildingsService {
	return &BuildingsService{dir: dir}
}

var _ Buildings = (*BuildingsService)(nil)

func (s *BuildingsService) ListBuildingsByName(ctx context.Context, caller Identity, page PageRequest) (models.BuildingList, error) {
	return s.dir.ListBuildingsByName(ctx, caller.Upn, page.TopCount, page.Skip)
}

func (s *BuildingsService) ListBuildingsByDistance(ctx context.Context, caller Identity, q GeoDistanceQuery) (models.BuildingList, error) {
	return s.dir.ListBuildingsByDistance(ctx, caller.Upn, q.SourceGeoCoordinates, q.DistanceMiles)
}

func (s *BuildingsService) GetBuildingByDisplayName(ctx context.Context, displayName string) (models.Building, error) {
	return s.dir.GetBuildingByDisplayName(ctx, displayName)
}

func (s *BuildingsService) ListPlaces(ctx context.Context, buildingUpn string, filter PlaceFilter, page PlacePage) (models.PlaceList, error) {
	return s.dir.ListPlaces(ctx, buildingUpn, filter.PlaceType, filter.Features, filter.DisplayNameSearch, page.TopCount, page.SkipToken)
}

func (s *BuildingsService) GetPlaceByUpn(ctx context.Context, upn string, placeType models.PlaceType) (models.Place, error) {
	return s.dir.GetPlaceByUpn(ctx, upn, placeType)
}

func (s *BuildingsService) GetWorkspacesSchedule(ctx context.Context, buildingUpn string, r ScheduleRange) (models.ScheduleSummary, error) {
	return s.dir.GetWorkspacesSchedule(ctx, buildingUpn, r.Start, r.End)
}

func (s *BuildingsService) SearchBuildings(ctx context.Context, searchString string, page PageRequest) (models.BuildingList, error) {
	return s.dir.SearchBuildings(ctx, searchString, page.TopCount, page.Skip)
}
