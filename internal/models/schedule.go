package models

// WorkspaceAvailability is the reserved/available split for one workspace
// over a requested range, computed upstream.
type WorkspaceAvailability struct {
	Upn              string  `json:"upn"`
	ReservedPercent  float64 `json:"reservedPercent"`
	AvailablePercent float64 `json:"availablePercent"`
}

// ScheduleSummary is the calendar view for all workspaces of a building.
// Start and End are echoed back exactly as the caller supplied them.
type ScheduleSummary struct {
	BuildingUpn string                  `json:"buildingUpn"`
	Start       string                  `json:"start"`
	End         string                  `json:"end"`
	Workspaces  []WorkspaceAvailability `json:"workspaces"`
}
