package models

// Building is a directory record for a physical building. All fields come
// from the upstream directory API and are returned to clients unchanged.
type Building struct {
	Upn            string `json:"upn"`
	DisplayName    string `json:"displayName"`
	Address        string `json:"address,omitempty"`
	GeoCoordinates string `json:"geoCoordinates,omitempty"` // "lat,long"
	ResourceEmail  string `json:"resourceEmail,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// BuildingList is a listing page plus the total match count.
type BuildingList struct {
	Buildings []Building `json:"buildings"`
	Count     int        `json:"count"`
}
