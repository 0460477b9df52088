package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
	"github.com/tech-sunvi/gas-gomission/internal/repository"
)

// ── Erreurs du module mission ──

var (
	ErrInvalidDates = errors.New("dates de mission invalides")
	ErrNoTravelers  = errors.New("aucun voyageur dans la demande")
)

// MissionService soumission d'une mission : enregistrement de la ligne de
// mission (et des groupes), puis assemblage du document d'ordre de mission
type MissionService interface {
	Submit(ctx context.Context, req *dto.SubmitMissionRequest) (*dto.SubmitMissionResponse, error)
}

type missionService struct {
	repo      *repository.Repository
	assembler AssemblerService
	logger    *zap.Logger

	// Garantit l'unicité et la monotonie des identifiants ODM-<epoch-ms>
	// même quand deux soumissions tombent dans la même milliseconde
	idMu       sync.Mutex
	lastStamp  int64
	nowMillis  func() int64
	nowDisplay func() string
}

// NewMissionService crée le service et vérifie au passage que la feuille
// Missions est exploitable (correspondance de colonnes déclarée)
func NewMissionService(repo *repository.Repository, assembler AssemblerService, logger *zap.Logger) (MissionService, error) {
	if err := repo.Mission.ValidateMapping(context.Background()); err != nil {
		return nil, fmt.Errorf("vérification de la feuille Missions: %w", err)
	}
	return &missionService{
		repo:       repo,
		assembler:  assembler,
		logger:     logger,
		nowMillis:  func() int64 { return time.Now().UnixMilli() },
		nowDisplay: func() string { return time.Now().Format("2006-01-02 15:04:05") },
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Submit — traitement complet d'une soumission de mission
// ═══════════════════════════════════════════════════════════
//
//  1. validation des dates
//  2. annuaire du personnel chargé une seule fois
//  3. résolution des groupes et de l'effectif complet (deux passes)
//  4. enregistrement de la ligne de mission + groupes éventuels
//  5. assemblage du document (individuel ou collectif)

func (s *missionService) Submit(ctx context.Context, req *dto.SubmitMissionRequest) (*dto.SubmitMissionResponse, error) {
	if _, err := time.Parse("2006-01-02", req.DepartureDate); err != nil {
		return nil, fmt.Errorf("%w: départ %q", ErrInvalidDates, req.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", req.ReturnDate); err != nil {
		return nil, fmt.Errorf("%w: retour %q", ErrInvalidDates, req.ReturnDate)
	}
	if len(req.Members) == 0 && len(req.Groups) == 0 {
		return nil, ErrNoTravelers
	}

	index, err := s.repo.Personnel.DirectoryIndex(ctx)
	if err != nil {
		s.logger.Error("construction de l'annuaire du personnel", zap.Error(err))
		return nil, err
	}

	groups := ResolveGroups(req, index)
	fullRoster := FullRoster(groups, index)
	driverIDs := DriverIDs(groups, index)

	missionID := s.nextMissionID()
	createdAt := s.nowDisplay()

	payload := map[string]interface{}{
		"reference":      req.Reference,
		"odmType":        req.OdmType,
		"destinations":   req.Destinations,
		"members":        req.Members,
		"missionObject":  req.MissionObject,
		"departureDate":  req.DepartureDate,
		"returnDate":     req.ReturnDate,
		"transportMeans": req.TransportMeans,
		"budgets":        req.Budgets,
		"docName":        req.DocName,
		"drivers":        driverIDs,
	}

	if err := s.repo.Mission.RecordMission(ctx, missionID, createdAt, payload); err != nil {
		s.logger.Error("enregistrement de la mission", zap.String("missionId", missionID), zap.Error(err))
		return nil, err
	}

	if len(req.Groups) > 0 {
		if err := s.repo.Mission.RecordGroupings(ctx, missionID, groups); err != nil {
			s.logger.Error("enregistrement des groupes", zap.String("missionId", missionID), zap.Error(err))
			return nil, err
		}
	}

	var url string
	if req.OdmType == model.OdmTypeIndividual {
		url, err = s.assembler.AssembleIndividual(ctx, req, groups, index, fullRoster)
	} else {
		url, err = s.assembler.AssembleCollective(ctx, req, index, fullRoster)
	}
	if err != nil {
		// Pas de retour arrière : la ligne de mission reste, l'appelant
		// voit l'échec global
		s.logger.Error("assemblage du document", zap.String("missionId", missionID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("mission traitée",
		zap.String("missionId", missionID),
		zap.Int("participants", len(fullRoster)),
		zap.String("documentUrl", url))

	return &dto.SubmitMissionResponse{MissionID: missionID, DocumentURL: url}, nil
}

// nextMissionID identifiant ODM-<epoch-millis>, strictement croissant dans
// le processus : l'horodatage est avancé d'une milliseconde si l'horloge
// n'a pas encore progressé
func (s *missionService) nextMissionID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	stamp := s.nowMillis()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	s.lastStamp = stamp

	return fmt.Sprintf("ODM-%d", stamp)
}
