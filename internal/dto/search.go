package dto

// SearchRequest paramètre d'autocomplétion
type SearchRequest struct {
	Hint string `form:"hint"`
}

// EmployeeMatch le 4-uplet retourné par la recherche d'employés
type EmployeeMatch struct {
	EmployeeID string `json:"employeeId"`
	Prenoms    string `json:"prenoms"`
	Nom        string `json:"nom"`
	Fonction   string `json:"fonction"`
}
