package service

import (
	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/config"
	"github.com/tech-sunvi/gas-gomission/internal/repository"
	"github.com/tech-sunvi/gas-gomission/pkg/docs"
	"github.com/tech-sunvi/gas-gomission/pkg/redis"
)

// Service point d'entrée agrégé de tous les services
type Service struct {
	Search    SearchService
	Personnel PersonnelService
	Reference ReferenceService
	Mission   MissionService
	Export    ExportService
}

// NewService crée l'agrégat des services.
// rdb peut être nil : les recherches se passent alors de cache.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	docStore *docs.Store,
	rdb *redis.Client,
	logger *zap.Logger,
) (*Service, error) {
	assembler := NewAssemblerService(docStore, &cfg.Documents, logger)

	mission, err := NewMissionService(repo, assembler, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		Search:    NewSearchService(repo, rdb, logger),
		Personnel: NewPersonnelService(repo, logger),
		Reference: NewReferenceService(repo, logger),
		Mission:   mission,
		Export:    NewExportService(repo, logger),
	}, nil
}
