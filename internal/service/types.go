package service

import "building_directory/internal/models"

// Pagination defaults, applied once at the HTTP boundary.
const (
	DefaultTopCount = 10
	DefaultSkip     = 0
)

// PageRequest carries resolved top/skip pagination. Values are already
// defaulted and validated when a PageRequest reaches the service layer.
type PageRequest struct {
	TopCount int
	Skip     int
}

// DefaultPage returns a PageRequest with both defaults applied.
func DefaultPage() PageRequest {
	return PageRequest{TopCount: DefaultTopCount, Skip: DefaultSkip}
}

// PlacePage is skip-token pagination for place listings. SkipToken is an
// opaque upstream cursor; empty means the first page.
type PlacePage struct {
	TopCount  int
	SkipToken string
}

// GeoDistanceQuery is a proximity search around a source point.
type GeoDistanceQuery struct {
	// SourceGeoCoordinates is the validated "lat,long" string, forwarded
	// unmodified.
	SourceGeoCoordinates string
	// DistanceMiles is the search radius. nil leaves the radius to the
	// directory service's default.
	DistanceMiles *float64
}

// PlaceFilter selects places within a building. Every false feature flag
// means "do not filter on this attribute"; the filter never excludes places
// for having a feature the caller did not ask about.
type PlaceFilter struct {
	PlaceType         models.PlaceType
	DisplayNameSearch string
	Features          models.PlaceFeatures
}

// ScheduleRange bounds a workspace schedule query. Start and End are
// forwarded verbatim; the directory service owns their interpretation.
type ScheduleRange struct {
	Start string
	End   string
}

// Identity is the authenticated principal. It is passed explicitly into the
// calls that attach it upstream rather than stored on the service, so
// concurrent requests can never observe each other's caller.
type Identity struct {
	UserID int
	Upn    string
}
