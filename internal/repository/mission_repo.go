package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/model"
	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
)

// ── Table de correspondance déclarée champ de demande → en-tête ──
//
// L'ancien système devinait la colonne à l'exécution (nom exact puis nom
// avec première lettre en minuscule). La correspondance est désormais
// déclarée et vérifiée au démarrage ; les en-têtes non couverts restent
// persistés en chaîne vide, contrat hérité de la table Missions.

var missionHeaderFields = map[string]string{
	"Reference":      "reference",
	"OdmType":        "odmType",
	"Destinations":   "destinations",
	"Members":        "members",
	"MissionObject":  "missionObject",
	"DepartureDate":  "departureDate",
	"ReturnDate":     "returnDate",
	"TransportMeans": "transportMeans",
	"Budgets":        "budgets",
	"DocName":        "docName",
	"Drivers":        "drivers",
}

// En-têtes synthétisés, hors table de correspondance
const (
	headerMissionID    = "MissionId"
	headerMissionIDAlt = "MissionID"
	headerCreatedAt    = "CreatedAt"
)

// En-têtes de la feuille des groupes, créée au premier usage
var groupingHeaders = []string{"MissionID", "Vehicle", "DriverID", "PassengerIDs"}

// MissionRepository accès aux feuilles Missions et MissionGroups
type MissionRepository interface {
	// ValidateMapping vérifie que la feuille Missions est exploitable :
	// colonne d'identifiant de mission et colonne d'horodatage présentes
	ValidateMapping(ctx context.Context) error
	// RecordMission ajoute la ligne d'une mission, alignée sur l'ordre des
	// en-têtes déclaré par la feuille ; payload est indexé par champ de
	// demande, les tableaux sont joints par " - "
	RecordMission(ctx context.Context, missionID, createdAt string, payload map[string]interface{}) error
	// RecordGroupings ajoute une ligne par groupe dans MissionGroups
	RecordGroupings(ctx context.Context, missionID string, groups []model.MissionGroup) error
	// GetByID retrouve la ligne d'une mission, clé en-tête → valeur
	GetByID(ctx context.Context, missionID string) (model.MissionRow, error)
}

type missionRepo struct {
	mu     sync.Mutex
	store  classeur.Store
	logger *zap.Logger
}

// NewMissionRepo crée une instance de MissionRepository
func NewMissionRepo(store classeur.Store, logger *zap.Logger) MissionRepository {
	return &missionRepo{store: store, logger: logger}
}

func (r *missionRepo) ValidateMapping(_ context.Context) error {
	sheet, err := r.store.Sheet(SheetMissions)
	if err != nil {
		return err
	}
	headers, err := sheet.Headers()
	if err != nil {
		return err
	}

	hasID, hasCreated := false, false
	for _, h := range headers {
		switch h {
		case headerMissionID, headerMissionIDAlt:
			hasID = true
		case headerCreatedAt:
			hasCreated = true
		default:
			if _, ok := missionHeaderFields[h]; !ok {
				r.logger.Warn("en-tête de la feuille Missions sans correspondance déclarée, persisté vide",
					zap.String("header", h))
			}
		}
	}
	if !hasID {
		return fmt.Errorf("feuille %s sans colonne %s: %w", SheetMissions, headerMissionID, classeur.ErrColumnNotFound)
	}
	if !hasCreated {
		return fmt.Errorf("feuille %s sans colonne %s: %w", SheetMissions, headerCreatedAt, classeur.ErrColumnNotFound)
	}
	return nil
}

func (r *missionRepo) RecordMission(_ context.Context, missionID, createdAt string, payload map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sheet, err := r.store.Sheet(SheetMissions)
	if err != nil {
		return err
	}
	headers, err := sheet.Headers()
	if err != nil {
		return err
	}

	row := make([]string, len(headers))
	for i, h := range headers {
		switch h {
		case headerMissionID, headerMissionIDAlt:
			row[i] = missionID
		case headerCreatedAt:
			row[i] = createdAt
		default:
			field, ok := missionHeaderFields[h]
			if !ok {
				continue // en-tête non couvert : chaîne vide
			}
			row[i] = payloadText(payload[field])
		}
	}

	if err := sheet.Append(row); err != nil {
		return err
	}
	return r.store.Save()
}

func (r *missionRepo) RecordGroupings(_ context.Context, missionID string, groups []model.MissionGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sheet, err := r.store.EnsureSheet(SheetMissionGroups, groupingHeaders)
	if err != nil {
		return err
	}

	for _, g := range groups {
		row := []string{missionID, g.Vehicle, g.DriverID, strings.Join(g.Passengers, ",")}
		if err := sheet.Append(row); err != nil {
			return err
		}
	}
	return r.store.Save()
}

func (r *missionRepo) GetByID(_ context.Context, missionID string) (model.MissionRow, error) {
	sheet, err := r.store.Sheet(SheetMissions)
	if err != nil {
		return nil, err
	}
	headers, err := sheet.Headers()
	if err != nil {
		return nil, err
	}
	rows, err := sheet.Rows()
	if err != nil {
		return nil, err
	}

	idIdx := -1
	for i, h := range headers {
		if h == headerMissionID || h == headerMissionIDAlt {
			idIdx = i
			break
		}
	}
	if idIdx == -1 {
		return nil, fmt.Errorf("feuille %s sans colonne %s: %w", SheetMissions, headerMissionID, classeur.ErrColumnNotFound)
	}

	for _, row := range rows {
		if row[idIdx] == missionID {
			m := make(model.MissionRow, len(headers))
			for i, h := range headers {
				m[h] = row[i]
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("mission %q: %w", missionID, ErrMissionNotFound)
}

// payloadText convertit une valeur de demande en texte de cellule ;
// les tableaux sont joints par " - "
func payloadText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, " - ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
