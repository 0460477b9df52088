package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
	"github.com/tech-sunvi/gas-gomission/internal/repository"
)

// ── Erreurs du module personnel ──

var ErrPersonnelNotFound = errors.New("dossier du personnel introuvable")

// Liste blanche des colonnes éditables par le formulaire ; tout autre
// champ du formulaire est ignoré sans bruit
var editableColumns = []string{
	model.ColNom, model.ColPrenoms, model.ColCivilite, model.ColFonction,
	model.ColDateNaissance, model.ColLieuNaissance, model.ColGrade,
	model.ColIndice, model.ColMatricule, model.ColIFU, model.ColAdresse,
	model.ColTelephone, model.ColEmail,
}

// PersonnelService consultation et édition des dossiers du personnel
//
// UpsertRecord ne remonte jamais d'erreur : toute défaillance est convertie
// en {success:false, message} pour que le front reçoive toujours une issue
// structurée.
type PersonnelService interface {
	// GetRecord retourne le dossier brut (en-tête → valeur)
	GetRecord(ctx context.Context, employeeID string) (map[string]string, error)
	UpsertRecord(ctx context.Context, form dto.UpsertPersonnelRequest) *dto.UpsertPersonnelResponse
}

type personnelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonnelService crée une instance de PersonnelService
func NewPersonnelService(repo *repository.Repository, logger *zap.Logger) PersonnelService {
	return &personnelService{repo: repo, logger: logger}
}

func (s *personnelService) GetRecord(ctx context.Context, employeeID string) (map[string]string, error) {
	record, err := s.repo.Personnel.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonnelNotFound) {
			return nil, ErrPersonnelNotFound
		}
		s.logger.Error("lecture du dossier", zap.String("employeeId", employeeID), zap.Error(err))
		return nil, err
	}
	return record, nil
}

// ════════════════════════════════════════════════════════════
// UpsertRecord — création ou mise à jour d'un dossier
// ════════════════════════════════════════════════════════════
//
//   - sans EmployeeId : création, identifiant = max des identifiants
//     numériques + 1 (1000 si la feuille n'en a aucun de valide)
//   - avec EmployeeId : mise à jour cellule par cellule des champs
//     présents dans le formulaire ; une date de naissance vide efface
//     la cellule

func (s *personnelService) UpsertRecord(ctx context.Context, form dto.UpsertPersonnelRequest) *dto.UpsertPersonnelResponse {
	fields, err := s.editableFields(form)
	if err != nil {
		return &dto.UpsertPersonnelResponse{Success: false, Message: err.Error()}
	}

	employeeID := form[model.ColEmployeeID]

	// ── Mode création ──
	if employeeID == "" {
		newID, err := s.repo.Personnel.Create(ctx, fields)
		if err != nil {
			s.logger.Error("création du dossier", zap.Error(err))
			return &dto.UpsertPersonnelResponse{Success: false, Message: err.Error()}
		}
		return &dto.UpsertPersonnelResponse{
			Success: true,
			Message: fmt.Sprintf("Nouveau dossier créé avec succès (ID: %d)", newID),
		}
	}

	// ── Mode mise à jour ──
	if err := s.repo.Personnel.Update(ctx, employeeID, fields); err != nil {
		s.logger.Error("mise à jour du dossier", zap.String("employeeId", employeeID), zap.Error(err))
		return &dto.UpsertPersonnelResponse{Success: false, Message: err.Error()}
	}
	return &dto.UpsertPersonnelResponse{Success: true}
}

// editableFields filtre le formulaire par la liste blanche et normalise la
// date de naissance au format de feuille (2006-01-02)
func (s *personnelService) editableFields(form dto.UpsertPersonnelRequest) (map[string]string, error) {
	fields := make(map[string]string)
	for _, col := range editableColumns {
		v, ok := form[col]
		if !ok {
			continue
		}
		if col == model.ColDateNaissance && v != "" {
			t, err := parseFormDate(v)
			if err != nil {
				return nil, fmt.Errorf("date de naissance illisible %q", v)
			}
			v = t.Format("2006-01-02")
		}
		fields[col] = v
	}
	return fields, nil
}

// parseFormDate accepte la date ISO nue ou horodatée du formulaire
func parseFormDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
