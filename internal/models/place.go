package models

// PlaceType discriminates the two kinds of bookable places. A room and a
// workspace may share a UPN shape, so lookups must always carry the type.
type PlaceType string

const (
	PlaceTypeRoom  PlaceType = "room"
	PlaceTypeSpace PlaceType = "space"
)

// PlaceFeatures are the filterable attributes of a place. A false value in
// a filter context means "no constraint on this attribute", never "must
// lack this feature".
type PlaceFeatures struct {
	HasVideo               bool `json:"hasVideo"`
	HasAudio               bool `json:"hasAudio"`
	HasDisplay             bool `json:"hasDisplay"`
	IsWheelchairAccessible bool `json:"isWheelchairAccessible"`
	FullyEnclosed          bool `json:"fullyEnclosed"`
	SurfaceHub             bool `json:"surfaceHub"`
	WhiteboardCamera       bool `json:"whiteboardCamera"`
}

// Place is a bookable resource (room or workspace) within a building.
type Place struct {
	Upn         string        `json:"upn"`
	DisplayName string        `json:"displayName"`
	PlaceType   PlaceType     `json:"placeType"`
	BuildingUpn string        `json:"buildingUpn,omitempty"`
	Capacity    int           `json:"capacity,omitempty"`
	Features    PlaceFeatures `json:"features"`
}

// PlaceList is one page of places. SkipToken, when non-empty, is the opaque
// cursor for the next page.
type PlaceList struct {
	Places    []Place `json:"places"`
	SkipToken string  `json:"skipToken,omitempty"`
}
