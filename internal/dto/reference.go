package dto

// AddDestinationRequest ajout d'une destination de référence
type AddDestinationRequest struct {
	Destination string `json:"destination" binding:"required,min=2,max=100"`
}

// AddVehicleRequest ajout d'un moyen de transport (immatriculation ou libellé)
type AddVehicleRequest struct {
	Vehicle string `json:"vehicle" binding:"required,min=2,max=100"`
}
