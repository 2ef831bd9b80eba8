package service

import (
	"context"

	"building_directory/internal/directory"
	"building_directory/internal/models"
	"building_directory/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// Buildings is the directory-service contract the endpoint layer delegates
// to. All operations are read-only; failures propagate to the caller
// unchanged, with no retries at this layer.
type Buildings interface {
	ListBuildingsByName(ctx context.Context, caller Identity, page PageRequest) (models.BuildingList, error)
	ListBuildingsByDistance(ctx context.Context, caller Identity, q GeoDistanceQuery) (models.BuildingList, error)
	GetBuildingByDisplayName(ctx context.Context, displayName string) (models.Building, error)
	ListPlaces(ctx context.Context, buildingUpn string, filter PlaceFilter, page PlacePage) (models.PlaceList, error)
	GetPlaceByUpn(ctx context.Context, upn string, placeType models.PlaceType) (models.Place, error)
	GetWorkspacesSchedule(ctx context.Context, buildingUpn string, r ScheduleRange) (models.ScheduleSummary, error)
	SearchBuildings(ctx context.Context, searchString string, page PageRequest) (models.BuildingList, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Buildings
	Authorization
}

// NewService wires the upstream directory client and the repository layer
// into concrete services.
func NewService(repos *repository.Repository, dir *directory.Client, auth AuthConfig) *Service {
	return &Service{
		Buildings:     NewBuildingsService(dir),
		Authorization: NewAuthService(repos.Users, auth),
	}
}
