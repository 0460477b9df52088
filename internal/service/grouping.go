package service

import (
	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
)

// ── Résolution des groupes de déplacement ──
//
// La demande porte soit des groupes explicites, soit une liste plate de
// voyageurs. Dans le second cas un groupe unique est synthétisé : premier
// moyen de transport comme véhicule, premier membre ayant la fonction de
// conducteur comme chauffeur, tous les membres comme passagers.
//
// La liste complète des participants est calculée AVANT tout rendu de page
// (contrat en deux passes) : chaque page générée et la note de service
// voient la même liste, quelle que soit l'ordre de génération.

// ResolveGroups normalise la demande en groupes {véhicule, chauffeur, passagers}
func ResolveGroups(req *dto.SubmitMissionRequest, index model.DirectoryIndex) []model.MissionGroup {
	if len(req.Groups) > 0 {
		groups := make([]model.MissionGroup, 0, len(req.Groups))
		for _, g := range req.Groups {
			groups = append(groups, model.MissionGroup{
				Vehicle:    g.Vehicle,
				DriverID:   g.DriverID,
				DriverName: g.DriverName,
				Passengers: append([]string(nil), g.Passengers...),
			})
		}
		return groups
	}

	vehicle := ""
	if len(req.TransportMeans) > 0 {
		vehicle = req.TransportMeans[0]
	}

	driverID := ""
	for _, id := range req.Members {
		if rec, ok := index[id]; ok && rec.IsDriver() {
			driverID = id
			break
		}
	}

	return []model.MissionGroup{{
		Vehicle:    vehicle,
		DriverID:   driverID,
		Passengers: append([]string(nil), req.Members...),
	}}
}

// FullRoster construit la liste des participants distincts de tous les
// groupes, dans l'ordre de la demande, chauffeur en tête de chaque groupe.
// Les identifiants absents de l'annuaire sont ignorés.
func FullRoster(groups []model.MissionGroup, index model.DirectoryIndex) []string {
	seen := make(map[string]bool)
	var roster []string

	for _, g := range groups {
		for _, id := range g.GenerationRoster() {
			if seen[id] {
				continue
			}
			seen[id] = true
			if rec, ok := index[id]; ok {
				roster = append(roster, rec.RosterLine())
			}
		}
	}
	return roster
}

// DriverIDs retourne les participants dont la fonction est celle de
// conducteur, dans l'ordre de première apparition
func DriverIDs(groups []model.MissionGroup, index model.DirectoryIndex) []string {
	seen := make(map[string]bool)
	var drivers []string

	for _, g := range groups {
		for _, id := range g.GenerationRoster() {
			if seen[id] {
				continue
			}
			seen[id] = true
			if rec, ok := index[id]; ok && rec.IsDriver() {
				drivers = append(drivers, id)
			}
		}
	}
	return drivers
}
