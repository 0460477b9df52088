package service

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/repository"
	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
	"github.com/tech-sunvi/gas-gomission/pkg/redis"
)

// SearchService recherches d'autocomplétion sur les tables de référence
//
// Correspondance par sous-chaîne, insensible à la casse et aux accents
// ("seme" trouve "Sèmè"). Les résultats passent par le cache Redis quand
// il est disponible ; toute panne du cache retombe sur le classeur.
type SearchService interface {
	// Employees recherche dans prénom OU nom, retourne le 4-uplet fixe
	Employees(ctx context.Context, hint string) ([]dto.EmployeeMatch, error)
	Destinations(ctx context.Context, hint string) ([]string, error)
	TransportMeans(ctx context.Context, hint string) ([]string, error)
	Budgets(ctx context.Context, hint string) ([]string, error)
	// SearchColumn recherche générique dans une colonne d'une feuille
	SearchColumn(ctx context.Context, sheetName, column, query string) ([]string, error)
	// SearchColumnProjected même recherche, chaque correspondance projetée
	// en uplet ordonné des colonnes demandées
	SearchColumnProjected(ctx context.Context, sheetName, column, query string, projectColumns []string) ([][]string, error)
}

type searchService struct {
	repo   *repository.Repository
	cache  *redis.Client // nil quand le cache est désactivé
	logger *zap.Logger
}

// NewSearchService crée une instance de SearchService
func NewSearchService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) SearchService {
	return &searchService{repo: repo, cache: cache, logger: logger}
}

func (s *searchService) Employees(ctx context.Context, hint string) ([]dto.EmployeeMatch, error) {
	cacheKey := repository.SheetPersonnel + ":noms:" + fold(hint)
	var cached []dto.EmployeeMatch
	if s.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	records, err := s.repo.Personnel.List(ctx)
	if err != nil {
		return nil, err
	}

	query := fold(hint)
	matches := []dto.EmployeeMatch{}
	for _, rec := range records {
		if strings.Contains(fold(rec.Prenoms), query) || strings.Contains(fold(rec.Nom), query) {
			matches = append(matches, dto.EmployeeMatch{
				EmployeeID: rec.EmployeeID,
				Prenoms:    rec.Prenoms,
				Nom:        rec.Nom,
				Fonction:   rec.Fonction,
			})
		}
	}

	s.cacheSet(ctx, cacheKey, matches)
	return matches, nil
}

func (s *searchService) Destinations(ctx context.Context, hint string) ([]string, error) {
	return s.cachedColumnSearch(ctx, repository.SheetDestinations, repository.ColDestination, hint)
}

func (s *searchService) TransportMeans(ctx context.Context, hint string) ([]string, error) {
	return s.cachedColumnSearch(ctx, repository.SheetTransport, repository.ColTransportMean, hint)
}

func (s *searchService) Budgets(ctx context.Context, hint string) ([]string, error) {
	return s.cachedColumnSearch(ctx, repository.SheetBudget, repository.ColBudget, hint)
}

func (s *searchService) SearchColumn(ctx context.Context, sheetName, column, query string) ([]string, error) {
	sheet, _, rows, err := s.repo.Reference.Table(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	colIdx, err := classeur.ColumnIndex(sheet, column)
	if err != nil {
		return nil, err
	}

	folded := fold(query)
	results := []string{}
	for _, row := range rows {
		if strings.Contains(fold(row[colIdx]), folded) {
			results = append(results, row[colIdx])
		}
	}
	return results, nil
}

func (s *searchService) SearchColumnProjected(ctx context.Context, sheetName, column, query string, projectColumns []string) ([][]string, error) {
	sheet, _, rows, err := s.repo.Reference.Table(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	colIdx, err := classeur.ColumnIndex(sheet, column)
	if err != nil {
		return nil, err
	}

	projIdx := make([]int, len(projectColumns))
	for i, pc := range projectColumns {
		idx, err := classeur.ColumnIndex(sheet, pc)
		if err != nil {
			return nil, err
		}
		projIdx[i] = idx
	}

	folded := fold(query)
	results := [][]string{}
	for _, row := range rows {
		if !strings.Contains(fold(row[colIdx]), folded) {
			continue
		}
		tuple := make([]string, len(projIdx))
		for i, idx := range projIdx {
			tuple[i] = row[idx]
		}
		results = append(results, tuple)
	}
	return results, nil
}

// ── Aides internes ──

func (s *searchService) cachedColumnSearch(ctx context.Context, sheetName, column, hint string) ([]string, error) {
	cacheKey := sheetName + ":" + column + ":" + fold(hint)
	var cached []string
	if s.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	results, err := s.SearchColumn(ctx, sheetName, column, hint)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, results)
	return results, nil
}

func (s *searchService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.GetSearch(ctx, key, dest)
	if err != nil {
		s.logger.Warn("lecture du cache de recherche", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (s *searchService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetSearch(ctx, key, value); err != nil {
		s.logger.Warn("écriture du cache de recherche", zap.String("key", key), zap.Error(err))
	}
}

// fold minuscules + suppression des accents, pour la correspondance
func fold(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
