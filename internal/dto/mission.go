package dto

// ── Soumission de mission ──

// MissionGroupRequest un groupe explicite de la demande : un véhicule, un
// chauffeur (driverId ou driverName libre, exclusifs) et ses passagers
type MissionGroupRequest struct {
	Vehicle    string   `json:"vehicle"`
	DriverID   string   `json:"driverId"`
	DriverName string   `json:"driverName"`
	Passengers []string `json:"passengers"`
}

// SubmitMissionRequest demande de génération d'un ordre de mission.
// Le front fournit soit une liste plate members, soit des groups explicites.
type SubmitMissionRequest struct {
	Reference      string                `json:"reference"`
	OdmType        string                `json:"odmType"`
	Destinations   []string              `json:"destinations"`
	Members        []string              `json:"members"`
	Groups         []MissionGroupRequest `json:"groups"`
	MissionObject  string                `json:"missionObject"  binding:"required"`
	DepartureDate  string                `json:"departureDate"  binding:"required"`
	ReturnDate     string                `json:"returnDate"     binding:"required"`
	TransportMeans []string              `json:"transportMeans"`
	Budgets        []string              `json:"budgets"`
	DocName        string                `json:"docName"`
}

// SubmitMissionResponse issue d'une soumission réussie
type SubmitMissionResponse struct {
	MissionID   string `json:"missionId"`
	DocumentURL string `json:"documentUrl"`
}
