package dto

// UpsertPersonnelRequest formulaire d'édition d'un dossier du personnel.
// Les clés sont les en-têtes de colonnes de la feuille Personnel ; seuls
// les champs de la liste blanche sont pris en compte, le reste est ignoré.
type UpsertPersonnelRequest map[string]string

// UpsertPersonnelResponse issue structurée d'un upsert : jamais d'erreur
// HTTP, le front reçoit toujours {success, message}
type UpsertPersonnelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
