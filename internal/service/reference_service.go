package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/repository"
)

// ReferenceService ajout de données de référence (destinations, véhicules)
type ReferenceService interface {
	AddDestination(ctx context.Context, destination string) error
	AddVehicle(ctx context.Context, vehicle string) error
}

type referenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReferenceService crée une instance de ReferenceService
func NewReferenceService(repo *repository.Repository, logger *zap.Logger) ReferenceService {
	return &referenceService{repo: repo, logger: logger}
}

func (s *referenceService) AddDestination(ctx context.Context, destination string) error {
	if err := s.repo.Reference.AppendValue(ctx, repository.SheetDestinations, repository.ColDestination, destination); err != nil {
		s.logger.Error("ajout d'une destination", zap.String("destination", destination), zap.Error(err))
		return err
	}
	s.logger.Info("destination ajoutée", zap.String("destination", destination))
	return nil
}

func (s *referenceService) AddVehicle(ctx context.Context, vehicle string) error {
	if err := s.repo.Reference.AppendValue(ctx, repository.SheetTransport, repository.ColTransportMean, vehicle); err != nil {
		s.logger.Error("ajout d'un véhicule", zap.String("vehicle", vehicle), zap.Error(err))
		return err
	}
	s.logger.Info("véhicule ajouté", zap.String("vehicle", vehicle))
	return nil
}
