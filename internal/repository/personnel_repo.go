package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/model"
	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
)

// PersonnelRepository accès à la feuille Personnel
type PersonnelRepository interface {
	// DirectoryIndex construit l'annuaire EmployeeID → dossier en une lecture
	DirectoryIndex(ctx context.Context) (model.DirectoryIndex, error)
	// List retourne tous les dossiers dans l'ordre des lignes de la feuille
	List(ctx context.Context) ([]model.PersonnelRecord, error)
	// GetByID retourne le dossier brut (en-tête → valeur), ErrPersonnelNotFound sinon
	GetByID(ctx context.Context, id string) (map[string]string, error)
	// Create génère l'identifiant suivant, ajoute une ligne vierge remplie
	// des champs donnés et retourne l'identifiant attribué
	Create(ctx context.Context, fields map[string]string) (int, error)
	// Update écrit les cellules données du dossier identifié ; une valeur
	// vide efface la cellule
	Update(ctx context.Context, id string, fields map[string]string) error
}

// personnelRepo implémentation de PersonnelRepository sur le classeur
type personnelRepo struct {
	mu     sync.Mutex // protège le balayage max-id + ajout contre les courses
	store  classeur.Store
	logger *zap.Logger
}

// NewPersonnelRepo crée une instance de PersonnelRepository
func NewPersonnelRepo(store classeur.Store, logger *zap.Logger) PersonnelRepository {
	return &personnelRepo{store: store, logger: logger}
}

func (r *personnelRepo) DirectoryIndex(_ context.Context) (model.DirectoryIndex, error) {
	sheet, headers, rows, err := r.table()
	if err != nil {
		return nil, err
	}

	idIdx, err := classeur.ColumnIndex(sheet, model.ColEmployeeID)
	if err != nil {
		return nil, err
	}

	col := headerIndexes(headers)
	index := make(model.DirectoryIndex, len(rows))
	for _, row := range rows {
		rec := recordFromRow(row, col)
		index[row[idIdx]] = rec
	}
	return index, nil
}

func (r *personnelRepo) List(_ context.Context) ([]model.PersonnelRecord, error) {
	_, headers, rows, err := r.table()
	if err != nil {
		return nil, err
	}

	col := headerIndexes(headers)
	records := make([]model.PersonnelRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row, col))
	}
	return records, nil
}

func (r *personnelRepo) GetByID(_ context.Context, id string) (map[string]string, error) {
	sheet, headers, rows, err := r.table()
	if err != nil {
		return nil, err
	}

	idIdx, err := classeur.ColumnIndex(sheet, model.ColEmployeeID)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row[idIdx] == id {
			record := make(map[string]string, len(headers))
			for i, h := range headers {
				record[h] = row[i]
			}
			return record, nil
		}
	}
	return nil, fmt.Errorf("dossier %q: %w", id, ErrPersonnelNotFound)
}

func (r *personnelRepo) Create(_ context.Context, fields map[string]string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sheet, headers, rows, err := r.table()
	if err != nil {
		return 0, err
	}

	idIdx, err := classeur.ColumnIndex(sheet, model.ColEmployeeID)
	if err != nil {
		return 0, err
	}

	// Identifiant suivant : max des identifiants numériques + 1, 1000 si
	// la feuille n'en contient encore aucun de valide
	nextID := 0
	for _, row := range rows {
		if n, err := strconv.Atoi(row[idIdx]); err == nil && n > nextID {
			nextID = n
		}
	}
	if nextID == 0 {
		nextID = 1000
	} else {
		nextID++
	}

	newRow := make([]string, len(headers))
	newRow[idIdx] = strconv.Itoa(nextID)
	for i, h := range headers {
		if v, ok := fields[h]; ok && i != idIdx {
			newRow[i] = v
		}
	}

	if err := sheet.Append(newRow); err != nil {
		return 0, err
	}
	if err := r.store.Save(); err != nil {
		return 0, err
	}

	r.logger.Info("dossier du personnel créé", zap.Int("employeeId", nextID))
	return nextID, nil
}

func (r *personnelRepo) Update(_ context.Context, id string, fields map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sheet, headers, rows, err := r.table()
	if err != nil {
		return err
	}

	idIdx, err := classeur.ColumnIndex(sheet, model.ColEmployeeID)
	if err != nil {
		return err
	}

	rowIdx := -1
	for i, row := range rows {
		if row[idIdx] == id {
			rowIdx = i
			break
		}
	}
	if rowIdx == -1 {
		return fmt.Errorf("dossier %q: %w", id, ErrPersonnelNotFound)
	}

	for i, h := range headers {
		v, ok := fields[h]
		if !ok || i == idIdx {
			continue
		}
		if err := sheet.SetCell(rowIdx, i, v); err != nil {
			return err
		}
	}
	return r.store.Save()
}

// ── Aides internes ──

func (r *personnelRepo) table() (classeur.Sheet, []string, [][]string, error) {
	sheet, err := r.store.Sheet(SheetPersonnel)
	if err != nil {
		return nil, nil, nil, err
	}
	headers, err := sheet.Headers()
	if err != nil {
		return nil, nil, nil, err
	}
	rows, err := sheet.Rows()
	if err != nil {
		return nil, nil, nil, err
	}
	return sheet, headers, rows, nil
}

func headerIndexes(headers []string) map[string]int {
	col := make(map[string]int, len(headers))
	for i, h := range headers {
		col[h] = i
	}
	return col
}

func recordFromRow(row []string, col map[string]int) model.PersonnelRecord {
	at := func(header string) string {
		if i, ok := col[header]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}
	return model.PersonnelRecord{
		EmployeeID:    at(model.ColEmployeeID),
		Nom:           at(model.ColNom),
		Prenoms:       at(model.ColPrenoms),
		Civilite:      at(model.ColCivilite),
		Fonction:      at(model.ColFonction),
		DateNaissance: at(model.ColDateNaissance),
		LieuNaissance: at(model.ColLieuNaissance),
		Grade:         at(model.ColGrade),
		Indice:        at(model.ColIndice),
		Matricule:     at(model.ColMatricule),
		IFU:           at(model.ColIFU),
		Adresse:       at(model.ColAdresse),
		Telephone:     at(model.ColTelephone),
		Sexe:          at(model.ColSexe),
		Email:         at(model.ColEmail),
	}
}
