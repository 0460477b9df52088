package classeur

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExcelStore implémentation de Store sur un classeur .xlsx unique.
//
// Toutes les opérations sont sérialisées par un verrou d'écriture : les
// balayages max-id et les ajouts de lignes ne peuvent pas se chevaucher
// entre deux soumissions concurrentes.
type ExcelStore struct {
	mu     sync.Mutex
	file   *excelize.File
	path   string
	logger *zap.Logger
}

// NewExcelStore ouvre le classeur au chemin donné, en le créant s'il n'existe pas
func NewExcelStore(path string, logger *zap.Logger) (*ExcelStore, error) {
	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("ouverture du classeur %s: %w", path, err)
		}
		logger.Info("classeur ouvert", zap.String("path", path))
	} else {
		f = excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("création du classeur %s: %w", path, err)
		}
		logger.Info("classeur créé", zap.String("path", path))
	}

	return &ExcelStore{file: f, path: path, logger: logger}, nil
}

func (s *ExcelStore) Sheet(name string) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("recherche de la feuille %q: %w", name, err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("feuille %q: %w", name, ErrSheetNotFound)
	}
	return &excelSheet{store: s, name: name}, nil
}

func (s *ExcelStore) EnsureSheet(name string, headers []string) (Sheet, error) {
	s.mu.Lock()

	idx, err := s.file.GetSheetIndex(name)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("recherche de la feuille %q: %w", name, err)
	}
	if idx == -1 {
		if _, err := s.file.NewSheet(name); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("création de la feuille %q: %w", name, err)
		}
		row := make([]interface{}, len(headers))
		for i, h := range headers {
			row[i] = h
		}
		if err := s.file.SetSheetRow(name, "A1", &row); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("écriture des en-têtes de %q: %w", name, err)
		}
		s.logger.Info("feuille créée", zap.String("sheet", name))
	}

	s.mu.Unlock()
	return &excelSheet{store: s, name: name}, nil
}

func (s *ExcelStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("enregistrement du classeur: %w", err)
	}
	return nil
}

func (s *ExcelStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// ── Feuille Excel ──

type excelSheet struct {
	store *ExcelStore
	name  string
}

func (sh *excelSheet) Name() string { return sh.name }

func (sh *excelSheet) Headers() ([]string, error) {
	rows, err := sh.allRows()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (sh *excelSheet) Rows() ([][]string, error) {
	rows, err := sh.allRows()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	// excelize tronque les cellules vides de fin ; on réaligne sur les en-têtes
	width := len(rows[0])
	data := make([][]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		padded := make([]string, width)
		copy(padded, r)
		data = append(data, padded)
	}
	return data, nil
}

func (sh *excelSheet) Append(row []string) error {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()

	rows, err := sh.store.file.GetRows(sh.name)
	if err != nil {
		return fmt.Errorf("lecture de la feuille %q: %w", sh.name, err)
	}

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	cell := fmt.Sprintf("A%d", len(rows)+1)
	if err := sh.store.file.SetSheetRow(sh.name, cell, &values); err != nil {
		return fmt.Errorf("ajout d'une ligne à %q: %w", sh.name, err)
	}
	return nil
}

func (sh *excelSheet) SetCell(rowIdx, colIdx int, value string) error {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()

	// +2 : la ligne 1 porte les en-têtes, les coordonnées sont 1-based
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
	if err != nil {
		return fmt.Errorf("coordonnées de cellule invalides: %w", err)
	}
	if err := sh.store.file.SetCellValue(sh.name, cell, value); err != nil {
		return fmt.Errorf("écriture de la cellule %s de %q: %w", cell, sh.name, err)
	}
	return nil
}

func (sh *excelSheet) allRows() ([][]string, error) {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()

	rows, err := sh.store.file.GetRows(sh.name)
	if err != nil {
		return nil, fmt.Errorf("lecture de la feuille %q: %w", sh.name, err)
	}
	return rows, nil
}
