package repository

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
)

// ── Feuilles du classeur ──

const (
	SheetPersonnel     = "Personnel"
	SheetDestinations  = "Destinations"
	SheetTransport     = "Transport"
	SheetBudget        = "Budget"
	SheetMissions      = "Missions"
	SheetMissionGroups = "MissionGroups"
)

// ── Colonnes des tables de référence mono-colonne ──

const (
	ColDestination   = "Destination"
	ColTransportMean = "Moyen de transport"
	ColBudget        = "Budget"
)

// ── Erreurs de la couche d'accès aux données ──

var (
	// ErrPersonnelNotFound aucun dossier ne porte l'identifiant demandé
	ErrPersonnelNotFound = errors.New("dossier du personnel introuvable")
	// ErrMissionNotFound aucune mission ne porte l'identifiant demandé
	ErrMissionNotFound = errors.New("mission introuvable")
)

// Repository point d'entrée agrégé de tous les dépôts
type Repository struct {
	Personnel PersonnelRepository
	Reference ReferenceRepository
	Mission   MissionRepository
}

// NewRepository crée l'agrégat des dépôts sur le magasin de feuilles
func NewRepository(store classeur.Store, logger *zap.Logger) *Repository {
	return &Repository{
		Personnel: NewPersonnelRepo(store, logger),
		Reference: NewReferenceRepo(store),
		Mission:   NewMissionRepo(store, logger),
	}
}
