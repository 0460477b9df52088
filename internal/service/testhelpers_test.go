package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
	"github.com/tech-sunvi/gas-gomission/internal/repository"
	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
)

// ── Aides de test ──
//
// Les services sont testés sur les dépôts réels, adossés au magasin de
// feuilles en mémoire. Seul l'assembleur documentaire est doublé quand
// le test ne porte pas sur lui.

var personnelHeaders = []string{
	model.ColEmployeeID, model.ColNom, model.ColPrenoms, model.ColCivilite,
	model.ColFonction, model.ColDateNaissance, model.ColLieuNaissance,
	model.ColGrade, model.ColIndice, model.ColMatricule, model.ColIFU,
	model.ColAdresse, model.ColTelephone, model.ColSexe, model.ColEmail,
}

var missionHeaders = []string{
	"MissionId", "CreatedAt", "Reference", "OdmType", "Destinations",
	"Members", "MissionObject", "DepartureDate", "ReturnDate",
	"TransportMeans", "Budgets", "DocName", "Drivers",
}

// seedStore construit un classeur en mémoire avec un échantillon réaliste
// de personnel et de tables de référence
func seedStore() *classeur.MemoryStore {
	store := classeur.NewMemoryStore()

	store.Seed(repository.SheetPersonnel, personnelHeaders, [][]string{
		{"594", "AHOYO", "Jean", "Monsieur", "Directeur Technique", "1980-03-15", "Cotonou",
			"A1", "450", "MAT-594", "IFU-594", "Quartier Fidjrossè; ", "+229 97 11 22 33", "M", "j.ahoyo@srtb.bj"},
		{"102", "KOUDJO", "Afi", "Madame", "Comptable", "1990-07-02", "Porto-Novo",
			"B2", "320", "MAT-102", "", "Akpakpa", "96445566", "F", ""},
		{"230", "SOSSOU", "Pierre", "Monsieur", model.DriverFunction, "1985-11-20", "Abomey",
			"C1", "280", "MAT-230", "", "Godomey", "+229 95 00 11 22", "M", ""},
	})

	store.Seed(repository.SheetDestinations, []string{repository.ColDestination}, [][]string{
		{"Natitingou"}, {"Parakou"}, {"Sèmè-Podji"},
	})
	store.Seed(repository.SheetTransport, []string{repository.ColTransportMean}, [][]string{
		{"Véhicule administratif"}, {"Bus"},
	})
	store.Seed(repository.SheetBudget, []string{repository.ColBudget}, [][]string{
		{model.DefaultBudget}, {"Budget annexe"},
	})
	store.Seed(repository.SheetMissions, missionHeaders, nil)

	return store
}

func newTestRepo(store *classeur.MemoryStore) *repository.Repository {
	return repository.NewRepository(store, zap.NewNop())
}

// ── Double de l'assembleur documentaire ──

type mockAssembler struct {
	individualCalls int
	collectiveCalls int
	lastRoster      []string
	lastGroups      []model.MissionGroup
	err             error
}

func (m *mockAssembler) AssembleIndividual(_ context.Context, _ *dto.SubmitMissionRequest,
	groups []model.MissionGroup, _ model.DirectoryIndex, fullRoster []string) (string, error) {
	m.individualCalls++
	m.lastGroups = groups
	m.lastRoster = fullRoster
	if m.err != nil {
		return "", m.err
	}
	return "http://localhost:8080/api/v1/documents/doc-individual", nil
}

func (m *mockAssembler) AssembleCollective(_ context.Context, _ *dto.SubmitMissionRequest,
	_ model.DirectoryIndex, fullRoster []string) (string, error) {
	m.collectiveCalls++
	m.lastRoster = fullRoster
	if m.err != nil {
		return "", m.err
	}
	return "http://localhost:8080/api/v1/documents/doc-collective", nil
}
