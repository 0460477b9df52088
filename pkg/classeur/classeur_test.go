package classeur

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// Les deux implémentations de Store sont couvertes par le même jeu de
// scénarios ; la variante Excel passe en plus par un cycle fermeture et
// réouverture du fichier.

func TestMemoryStore_SheetLifecycle(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("Personnel", []string{"EmployeeId", "Nom"}, [][]string{
		{"594", "AHOYO"},
	})

	sheet, err := store.Sheet("Personnel")
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}

	headers, err := sheet.Headers()
	if err != nil {
		t.Fatalf("Headers: %v", err)
	}
	if diff := cmp.Diff([]string{"EmployeeId", "Nom"}, headers); diff != "" {
		t.Errorf("en-têtes (-attendu +obtenu):\n%s", diff)
	}

	if err := sheet.Append([]string{"102", "KOUDJO"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := sheet.SetCell(0, 1, "AHOYO-DEGBE"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}

	rows, err := sheet.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	want := [][]string{
		{"594", "AHOYO-DEGBE"},
		{"102", "KOUDJO"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("lignes (-attendu +obtenu):\n%s", diff)
	}
}

func TestMemoryStore_SheetNotFound(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Sheet("Absente"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("attendu ErrSheetNotFound, obtenu %v", err)
	}
}

func TestMemoryStore_EnsureSheet(t *testing.T) {
	store := NewMemoryStore()

	sheet, err := store.EnsureSheet("Groupes", []string{"MissionID", "Vehicle"})
	if err != nil {
		t.Fatalf("EnsureSheet: %v", err)
	}
	if err := sheet.Append([]string{"ODM-1", "Bus"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// Un second EnsureSheet retourne la même feuille, données préservées
	again, err := store.EnsureSheet("Groupes", []string{"MissionID", "Vehicle"})
	if err != nil {
		t.Fatalf("EnsureSheet (2e): %v", err)
	}
	rows, _ := again.Rows()
	if len(rows) != 1 {
		t.Errorf("les données de la feuille existante doivent être préservées, %d lignes", len(rows))
	}
}

func TestMemoryStore_PadsShortRows(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("Budget", []string{"Budget", "Code"}, nil)

	sheet, _ := store.Sheet("Budget")
	if err := sheet.Append([]string{"Budget SRTB"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rows, _ := sheet.Rows()
	if len(rows[0]) != 2 || rows[0][1] != "" {
		t.Errorf("ligne courte non complétée à la largeur des en-têtes: %v", rows[0])
	}
}

func TestColumnIndex(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("Transport", []string{"Moyen de transport", "Capacité"}, nil)
	sheet, _ := store.Sheet("Transport")

	idx, err := ColumnIndex(sheet, "Capacité")
	if err != nil {
		t.Fatalf("ColumnIndex: %v", err)
	}
	if idx != 1 {
		t.Errorf("indice = %d, attendu 1", idx)
	}

	if _, err := ColumnIndex(sheet, "Inexistante"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("attendu ErrColumnNotFound, obtenu %v", err)
	}
}

func TestExcelStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classeur.xlsx")
	logger := zap.NewNop()

	store, err := NewExcelStore(path, logger)
	if err != nil {
		t.Fatalf("NewExcelStore: %v", err)
	}

	sheet, err := store.EnsureSheet("Personnel", []string{"EmployeeId", "Nom", "Prénoms"})
	if err != nil {
		t.Fatalf("EnsureSheet: %v", err)
	}
	if err := sheet.Append([]string{"594", "AHOYO", "Jean"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := sheet.SetCell(0, 2, "Jean-Baptiste"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Réouverture : les données persistées doivent être relues à l'identique
	reopened, err := NewExcelStore(path, logger)
	if err != nil {
		t.Fatalf("réouverture: %v", err)
	}
	defer reopened.Close()

	sheet, err = reopened.Sheet("Personnel")
	if err != nil {
		t.Fatalf("Sheet après réouverture: %v", err)
	}
	rows, err := sheet.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	want := [][]string{{"594", "AHOYO", "Jean-Baptiste"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("lignes relues (-attendu +obtenu):\n%s", diff)
	}
}

func TestExcelStore_RowsPaddedToHeaderWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classeur.xlsx")
	store, err := NewExcelStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewExcelStore: %v", err)
	}
	defer store.Close()

	sheet, err := store.EnsureSheet("Missions", []string{"MissionId", "CreatedAt", "Reference"})
	if err != nil {
		t.Fatalf("EnsureSheet: %v", err)
	}
	// excelize tronque les cellules vides de fin à la relecture
	if err := sheet.Append([]string{"ODM-1", "2025-06-25 10:00:00", ""}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	rows, err := sheet.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Fatalf("lignes mal alignées: %v", rows)
	}
}

func TestExcelStore_SheetNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classeur.xlsx")
	store, err := NewExcelStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewExcelStore: %v", err)
	}
	defer store.Close()

	if _, err := store.Sheet("Absente"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("attendu ErrSheetNotFound, obtenu %v", err)
	}
}
