// Package classeur fournit l'accès aux tables de référence de l'application
// sous forme de feuilles (ligne d'en-têtes + lignes de données), avec une
// implémentation persistante sur classeur Excel et une implémentation en
// mémoire pour les tests.
package classeur

import (
	"errors"
	"fmt"
)

// ── Erreurs du magasin ──

var (
	// ErrSheetNotFound la feuille demandée n'existe pas dans le classeur
	ErrSheetNotFound = errors.New("feuille introuvable")
	// ErrColumnNotFound la colonne demandée n'existe pas dans la feuille
	ErrColumnNotFound = errors.New("colonne introuvable")
)

// Sheet une feuille de données : ligne d'en-têtes suivie de lignes de valeurs.
// Toutes les valeurs sont manipulées comme texte d'affichage.
type Sheet interface {
	Name() string
	// Headers retourne la ligne d'en-têtes
	Headers() ([]string, error)
	// Rows retourne les lignes de données (en-têtes exclus), chacune
	// complétée à la largeur des en-têtes
	Rows() ([][]string, error)
	// Append ajoute une ligne de données à la fin de la feuille
	Append(row []string) error
	// SetCell écrit une cellule ; rowIdx est l'indice 0-based dans Rows()
	SetCell(rowIdx, colIdx int, value string) error
}

// Store un ensemble nommé de feuilles
type Store interface {
	// Sheet retourne la feuille nommée, ErrSheetNotFound sinon
	Sheet(name string) (Sheet, error)
	// EnsureSheet retourne la feuille nommée, en la créant avec la ligne
	// d'en-têtes donnée si elle n'existe pas encore
	EnsureSheet(name string, headers []string) (Sheet, error)
	// Save persiste l'état courant du classeur
	Save() error
	Close() error
}

// ColumnIndex résout l'indice d'une colonne par son en-tête.
// L'erreur nomme la feuille et la colonne manquante.
func ColumnIndex(s Sheet, header string) (int, error) {
	headers, err := s.Headers()
	if err != nil {
		return -1, err
	}
	for i, h := range headers {
		if h == header {
			return i, nil
		}
	}
	return -1, fmt.Errorf("colonne %q introuvable dans %s: %w", header, s.Name(), ErrColumnNotFound)
}
