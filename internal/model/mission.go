package model

// OdmTypeIndividual type de mission produisant un ordre par voyageur ;
// tout autre type produit l'ordre collectif (SFM)
const OdmTypeIndividual = "individual"

// MissionGroup un groupe de déplacement résolu : un véhicule, un chauffeur
// (désigné par identifiant ou par nom libre, jamais les deux) et la liste
// ordonnée des passagers.
type MissionGroup struct {
	Vehicle    string
	DriverID   string
	DriverName string
	Passengers []string
}

// GenerationRoster liste des voyageurs pour lesquels une page est générée :
// le chauffeur identifié est forcé en tête puis la liste des passagers,
// sans doublon, ordre de première apparition préservé.
func (g MissionGroup) GenerationRoster() []string {
	seen := make(map[string]bool, len(g.Passengers)+1)
	var roster []string

	if g.DriverID != "" {
		seen[g.DriverID] = true
		roster = append(roster, g.DriverID)
	}
	for _, id := range g.Passengers {
		if seen[id] {
			continue
		}
		seen[id] = true
		roster = append(roster, id)
	}
	return roster
}

// MissionRow une ligne de la feuille Missions, clé en-tête → valeur texte
type MissionRow map[string]string

// RenderContext l'ensemble des valeurs nommées substituées dans le modèle
// d'un voyageur ; chaque valeur est déjà du texte d'affichage
type RenderContext map[string]string
