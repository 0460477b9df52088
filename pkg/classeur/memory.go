package classeur

import (
	"fmt"
	"sync"
)

// MemoryStore implémentation de Store en mémoire, destinée aux tests
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string]*memorySheet
}

// NewMemoryStore crée un magasin en mémoire vide
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string]*memorySheet)}
}

// Seed crée ou remplace une feuille avec les en-têtes et lignes donnés
func (s *MemoryStore) Seed(name string, headers []string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh := &memorySheet{store: s, name: name, headers: headers}
	for _, r := range rows {
		padded := make([]string, len(headers))
		copy(padded, r)
		sh.rows = append(sh.rows, padded)
	}
	s.sheets[name] = sh
}

func (s *MemoryStore) Sheet(name string) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[name]
	if !ok {
		return nil, fmt.Errorf("feuille %q: %w", name, ErrSheetNotFound)
	}
	return sh, nil
}

func (s *MemoryStore) EnsureSheet(name string, headers []string) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[name]
	if !ok {
		sh = &memorySheet{store: s, name: name, headers: append([]string(nil), headers...)}
		s.sheets[name] = sh
	}
	return sh, nil
}

func (s *MemoryStore) Save() error { return nil }

func (s *MemoryStore) Close() error { return nil }

// ── Feuille en mémoire ──

type memorySheet struct {
	store   *MemoryStore
	name    string
	headers []string
	rows    [][]string
}

func (sh *memorySheet) Name() string { return sh.name }

func (sh *memorySheet) Headers() ([]string, error) {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()
	return append([]string(nil), sh.headers...), nil
}

func (sh *memorySheet) Rows() ([][]string, error) {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()
	out := make([][]string, len(sh.rows))
	for i, r := range sh.rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

func (sh *memorySheet) Append(row []string) error {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()
	padded := make([]string, len(sh.headers))
	copy(padded, row)
	sh.rows = append(sh.rows, padded)
	return nil
}

func (sh *memorySheet) SetCell(rowIdx, colIdx int, value string) error {
	sh.store.mu.Lock()
	defer sh.store.mu.Unlock()
	if rowIdx < 0 || rowIdx >= len(sh.rows) {
		return fmt.Errorf("ligne %d hors limites dans %q", rowIdx, sh.name)
	}
	if colIdx < 0 || colIdx >= len(sh.headers) {
		return fmt.Errorf("colonne %d hors limites dans %q", colIdx, sh.name)
	}
	sh.rows[rowIdx][colIdx] = value
	return nil
}
