package model

// MissingData valeur de remplacement des champs absents dans les documents
const MissingData = "-----"

// DriverFunction intitulé exact de la fonction de conducteur dans la
// feuille Personnel ; il pilote la détection des chauffeurs
const DriverFunction = "Conducteur de véhicules administratifs"

// DefaultBudget budget appliqué quand la demande n'en précise aucun
const DefaultBudget = "Budget SRTB"

// ── En-têtes de la feuille Personnel ──

const (
	ColEmployeeID    = "EmployeeId"
	ColNom           = "Nom"
	ColPrenoms       = "Prénoms"
	ColCivilite      = "Civilité"
	ColFonction      = "Fonction"
	ColDateNaissance = "Date de naissance"
	ColLieuNaissance = "Lieu de naissance"
	ColGrade         = "Grade"
	ColIndice        = "Indice"
	ColMatricule     = "Matricule"
	ColIFU           = "IFU"
	ColAdresse       = "Adresse complète"
	ColTelephone     = "Telephone"
	ColSexe          = "Sexe"
	ColEmail         = "Email"
)

// PersonnelRecord un dossier du personnel, clé EmployeeID unique dans
// l'annuaire. Les champs optionnels absents restent des chaînes vides ici ;
// le rendu documentaire leur substitue la valeur de remplacement.
type PersonnelRecord struct {
	EmployeeID    string `json:"employeeId"`
	Nom           string `json:"nom"`
	Prenoms       string `json:"prenoms"`
	Civilite      string `json:"civilite"`
	Fonction      string `json:"fonction"`
	DateNaissance string `json:"dateNaissance"`
	LieuNaissance string `json:"lieuNaissance"`
	Grade         string `json:"grade"`
	Indice        string `json:"indice"`
	Matricule     string `json:"matricule"`
	IFU           string `json:"ifu"`
	Adresse       string `json:"adresse"`
	Telephone     string `json:"telephone"`
	Sexe          string `json:"sexe"`
	Email         string `json:"email"`
}

// FullName nom complet "Nom Prénoms" tel qu'il apparaît dans les documents
func (r PersonnelRecord) FullName() string {
	return r.Nom + " " + r.Prenoms
}

// RosterLine ligne de ce dossier dans la liste des participants
// ("- Civilité Nom Prénoms, Fonction")
func (r PersonnelRecord) RosterLine() string {
	return "- " + r.Civilite + " " + r.Nom + " " + r.Prenoms + ", " + r.Fonction
}

// IsDriver vrai si la fonction du dossier est celle de conducteur
func (r PersonnelRecord) IsDriver() bool {
	return r.Fonction == DriverFunction
}

// DirectoryIndex annuaire en mémoire : EmployeeID (texte) → dossier.
// Construit en une seule lecture de la feuille Personnel par traitement
// de mission ; toutes les résolutions ultérieures sont des accès O(1).
type DirectoryIndex map[string]PersonnelRecord
