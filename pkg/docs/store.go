package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ── Erreurs du magasin de documents ──

var (
	// ErrTemplateNotFound le modèle demandé n'existe pas
	ErrTemplateNotFound = errors.New("modèle de document introuvable")
	// ErrDocumentNotFound le document demandé n'existe pas
	ErrDocumentNotFound = errors.New("document introuvable")
)

// Store magasin de documents sur fichiers : les modèles sont lus dans un
// répertoire dédié par identifiant opaque, les documents produits sont
// écrits dans un dossier de sortie, la mise à la corbeille les déplace
// dans un dossier de corbeille.
type Store struct {
	templateDir string
	outputDir   string
	trashDir    string
	baseURL     string
	logger      *zap.Logger
}

// NewStore crée le magasin et les répertoires de sortie et de corbeille
func NewStore(templateDir, outputDir, trashDir, baseURL string, logger *zap.Logger) (*Store, error) {
	for _, dir := range []string{outputDir, trashDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("création du répertoire %s: %w", dir, err)
		}
	}
	if _, err := os.Stat(templateDir); err != nil {
		return nil, fmt.Errorf("répertoire des modèles %s: %w", templateDir, err)
	}
	return &Store{
		templateDir: templateDir,
		outputDir:   outputDir,
		trashDir:    trashDir,
		baseURL:     baseURL,
		logger:      logger,
	}, nil
}

// Create crée un document vide dans le dossier de sortie
func (s *Store) Create(name string) (*Document, error) {
	doc := &Document{ID: uuid.New().String(), Name: name}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CopyTemplate copie un modèle en un nouveau document temporaire
func (s *Store) CopyTemplate(templateID string) (*Document, error) {
	path := filepath.Join(s.templateDir, templateID+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("modèle %q: %w", templateID, ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("lecture du modèle %q: %w", templateID, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("analyse du modèle %q: %w", templateID, err)
	}

	doc.ID = uuid.New().String()
	if err := s.Save(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Open relit un document du dossier de sortie
func (s *Store) Open(id string) (*Document, error) {
	raw, err := os.ReadFile(s.docPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document %q: %w", id, ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("ouverture du document %q: %w", id, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("analyse du document %q: %w", id, err)
	}
	return &doc, nil
}

// Save écrit (ou réécrit) le document dans le dossier de sortie
func (s *Store) Save(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sérialisation du document %q: %w", doc.ID, err)
	}
	if err := os.WriteFile(s.docPath(doc.ID), raw, 0o644); err != nil {
		return fmt.Errorf("enregistrement du document %q: %w", doc.ID, err)
	}
	return nil
}

// Trash déplace le document vers la corbeille
func (s *Store) Trash(id string) error {
	src := s.docPath(id)
	dst := filepath.Join(s.trashDir, id+".json")
	if err := os.Rename(src, dst); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %q: %w", id, ErrDocumentNotFound)
		}
		return fmt.Errorf("mise à la corbeille du document %q: %w", id, err)
	}
	return nil
}

// URL retourne la référence d'emplacement publique d'un document
func (s *Store) URL(id string) string {
	return s.baseURL + "/api/v1/documents/" + id
}

func (s *Store) docPath(id string) string {
	return filepath.Join(s.outputDir, id+".json")
}
