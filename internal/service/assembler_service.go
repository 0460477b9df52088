package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/config"
	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
	"github.com/tech-sunvi/gas-gomission/pkg/docs"
)

// Intitulé dont le paragraphe reçoit le style de titre lors de la remise
// en forme du document final
const headingText = "ORDRE DE MISSION"

// AssemblerService assemblage du document final d'une mission
//
// Déroulé individuel : pour chaque groupe puis chaque voyageur de son
// effectif de génération, copie du modèle individuel, substitution,
// recopie élément par élément dans le document de destination, remise en
// forme des paragraphes, saut de page ; puis note de service (modèle
// multiple ou simple selon la taille de l'effectif) recopiée à la suite.
// Les copies temporaires sont mises à la corbeille dans tous les cas,
// échec compris.
type AssemblerService interface {
	// AssembleIndividual produit le document fusionné d'un ordre individuel
	// et retourne sa référence d'emplacement
	AssembleIndividual(ctx context.Context, req *dto.SubmitMissionRequest, groups []model.MissionGroup,
		index model.DirectoryIndex, fullRoster []string) (string, error)
	// AssembleCollective produit l'ordre collectif (SFM) en un seul document
	AssembleCollective(ctx context.Context, req *dto.SubmitMissionRequest,
		index model.DirectoryIndex, fullRoster []string) (string, error)
}

type assemblerService struct {
	docs   *docs.Store
	cfg    *config.DocumentsConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewAssemblerService crée une instance d'AssemblerService
func NewAssemblerService(store *docs.Store, cfg *config.DocumentsConfig, logger *zap.Logger) AssemblerService {
	return &assemblerService{docs: store, cfg: cfg, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// AssembleIndividual — document fusionné d'un ordre individuel
// ═══════════════════════════════════════════════════════════
//
// Machine à états séquentielle, terminale au premier échec non rattrapable :
//   1. création du document de destination
//   2. par groupe, par voyageur : page personnalisée recopiée + saut de page
//   3. note de service choisie selon la taille de l'effectif complet
//   4. enregistrement et référence d'emplacement
//
// Un voyageur absent de l'annuaire est sauté sans interrompre l'assemblage ;
// toute autre défaillance remonte et abandonne le tout, sans retour arrière
// sur le document partiel.

func (s *assemblerService) AssembleIndividual(ctx context.Context, req *dto.SubmitMissionRequest,
	groups []model.MissionGroup, index model.DirectoryIndex, fullRoster []string) (string, error) {

	dest, err := s.docs.Create(s.documentTitle(req))
	if err != nil {
		return "", err
	}

	shared := BuildMissionValues(req)
	rosterText := strings.Join(fullRoster, "\n")

	for _, group := range groups {
		driverName := resolveDriverName(group, index)

		for _, travelerID := range group.GenerationRoster() {
			rec, ok := index[travelerID]
			if !ok {
				s.logger.Debug("voyageur absent de l'annuaire, page sautée",
					zap.String("employeeId", travelerID))
				continue
			}

			rc := BuildTravelerContext(shared, rec, group, driverName, req.MissionObject, rosterText)
			if err := s.appendFilledTemplate(dest, s.cfg.IndividualTemplateID, rc); err != nil {
				return "", err
			}

			s.restyleParagraphs(dest)
			dest.AppendPageBreak()
		}
	}

	// Note de service : valeurs de mission, chauffeur du premier groupe,
	// liste complète des participants et objet de mission d'origine
	noteValues := make(model.RenderContext, len(shared)+3)
	for k, v := range shared {
		noteValues[k] = v
	}
	noteValues["driver"] = orMissing(firstDriverName(groups, index))
	noteValues["membersList"] = rosterText
	noteValues["missionObject"] = req.MissionObject

	noteTemplateID := s.summaryTemplateID(len(fullRoster))
	if err := s.appendFilledTemplate(dest, noteTemplateID, noteValues); err != nil {
		return "", err
	}

	if err := s.docs.Save(dest); err != nil {
		return "", err
	}

	s.logger.Info("document d'ordre de mission assemblé",
		zap.String("documentId", dest.ID),
		zap.Int("participants", len(fullRoster)))

	return s.docs.URL(dest.ID), nil
}

// ═══════════════════════════════════════════════════════════
// AssembleCollective — ordre collectif (SFM) en un seul document
// ═══════════════════════════════════════════════════════════

func (s *assemblerService) AssembleCollective(ctx context.Context, req *dto.SubmitMissionRequest,
	index model.DirectoryIndex, fullRoster []string) (string, error) {

	templateID := s.cfg.SFMSingleTemplateID
	if len(req.Members) > 1 {
		templateID = s.cfg.SFMMultipleTemplateID
	}

	doc, err := s.docs.CopyTemplate(templateID)
	if err != nil {
		return "", err
	}
	doc.Name = s.documentTitle(req)

	values := BuildMissionValues(req)
	values["missionObject"] = orMissing(req.MissionObject)
	values["membersList"] = strings.Join(fullRoster, "\n")

	// Un seul voyageur : le modèle simple porte aussi ses champs d'identité
	if len(req.Members) == 1 {
		if rec, ok := index[req.Members[0]]; ok {
			values["nom"] = orMissing(rec.Nom)
			values["prenom"] = orMissing(rec.Prenoms)
			values["fullName"] = orMissing(strings.TrimSpace(rec.FullName()))
			values["civilite"] = orMissing(rec.Civilite)
			values["fonction"] = orMissing(rec.Fonction)
			values["charge"] = genderedCharge(rec.Civilite)
		}
	}

	substitute(doc, values)

	if err := s.docs.Save(doc); err != nil {
		return "", err
	}

	s.logger.Info("ordre de mission collectif généré", zap.String("documentId", doc.ID))
	return s.docs.URL(doc.ID), nil
}

// ── Aides internes ──

// appendFilledTemplate copie le modèle, substitue les valeurs, enregistre,
// rouvre et recopie chaque élément dans le document de destination.
// La copie temporaire part à la corbeille quoi qu'il arrive.
func (s *assemblerService) appendFilledTemplate(dest *docs.Document, templateID string, values model.RenderContext) error {
	tmp, err := s.docs.CopyTemplate(templateID)
	if err != nil {
		return err
	}
	defer s.trash(tmp.ID)

	substitute(tmp, values)

	if err := s.docs.Save(tmp); err != nil {
		return err
	}

	// Réouverture de la copie remplie avant recopie des éléments
	filled, err := s.docs.Open(tmp.ID)
	if err != nil {
		return err
	}

	for _, el := range filled.Body {
		s.appendElement(dest, el)
	}
	return nil
}

// appendElement recopie un élément pris en charge ; tout autre type est
// sauté avec un diagnostic
func (s *assemblerService) appendElement(dest *docs.Document, el *docs.Element) {
	switch el.Kind {
	case docs.KindParagraph:
		dest.AppendParagraph(el)
	case docs.KindTable:
		dest.AppendTable(el)
	case docs.KindListItem:
		dest.AppendListItem(el)
	case docs.KindInlineImage:
		dest.AppendImage(el)
	default:
		s.logger.Warn("type d'élément non pris en charge", zap.String("kind", string(el.Kind)))
	}
}

// restyleParagraphs applique la mise en forme uniforme : le titre
// "ORDRE DE MISSION" en grand centré, tout autre paragraphe en corps
func (s *assemblerService) restyleParagraphs(dest *docs.Document) {
	for _, p := range dest.Paragraphs() {
		text := strings.TrimSpace(p.Text)
		if strings.EqualFold(text, headingText) {
			p.SetFontFamily("Calibri").SetFontSize(24).SetAlignment(docs.AlignCenter)
		} else {
			p.SetFontFamily("Calibri").SetFontSize(13).SetSpacingAfter(5)
		}
	}
}

// summaryTemplateID choisit le modèle de note de service d'après la taille
// de l'effectif : pluriel au-delà d'un participant
func (s *assemblerService) summaryTemplateID(rosterSize int) string {
	if rosterSize > 1 {
		return s.cfg.NoteMultipleTemplateID
	}
	return s.cfg.NoteSingleTemplateID
}

// documentTitle titre du document final ; privilégie le nom d'affichage
// fourni, sinon la référence de la mission
func (s *assemblerService) documentTitle(req *dto.SubmitMissionRequest) string {
	today := s.now().Format("2006-01-02")
	if req.DocName != "" {
		return "Ordre de Mission - " + today + " " + req.DocName
	}
	return "Ordre de Mission - " + orMissing(req.Reference) + " - " + today
}

func (s *assemblerService) trash(id string) {
	if err := s.docs.Trash(id); err != nil {
		s.logger.Warn("mise à la corbeille du document temporaire",
			zap.String("documentId", id), zap.Error(err))
	}
}

func substitute(doc *docs.Document, values model.RenderContext) {
	for key, val := range values {
		doc.ReplaceText("{{"+key+"}}", val)
	}
}

func resolveDriverName(group model.MissionGroup, index model.DirectoryIndex) string {
	if group.DriverID != "" {
		if rec, ok := index[group.DriverID]; ok {
			return rec.FullName()
		}
		return ""
	}
	return group.DriverName
}

func firstDriverName(groups []model.MissionGroup, index model.DirectoryIndex) string {
	for _, g := range groups {
		if name := resolveDriverName(g, index); name != "" {
			return name
		}
	}
	return ""
}
