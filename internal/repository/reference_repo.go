package repository

import (
	"context"

	"github.com/tech-sunvi/gas-gomission/pkg/classeur"
)

// ReferenceRepository accès brut aux tables de référence (destinations,
// moyens de transport, budgets) ; la logique de filtrage vit côté service
type ReferenceRepository interface {
	// Table retourne les en-têtes et lignes de la feuille nommée
	Table(ctx context.Context, sheetName string) (classeur.Sheet, []string, [][]string, error)
	// AppendValue ajoute une valeur dans la colonne donnée d'une feuille,
	// les autres colonnes restant vides
	AppendValue(ctx context.Context, sheetName, column, value string) error
}

type referenceRepo struct {
	store classeur.Store
}

// NewReferenceRepo crée une instance de ReferenceRepository
func NewReferenceRepo(store classeur.Store) ReferenceRepository {
	return &referenceRepo{store: store}
}

func (r *referenceRepo) Table(_ context.Context, sheetName string) (classeur.Sheet, []string, [][]string, error) {
	sheet, err := r.store.Sheet(sheetName)
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

func (r *referenceRepo) AppendValue(ctx context.Context, sheetName, column, value string) error {
	sheet, headers, _, err := r.Table(ctx, sheetName)
	if err != nil {
		return err
	}

	colIdx, err := classeur.ColumnIndex(sheet, column)
	if err != nil {
		return err
	}

	row := make([]string, len(headers))
	row[colIdx] = value
	if err := sheet.Append(row); err != nil {
		return err
	}
	return r.store.Save()
}
