package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
)

// ── Rendu des champs de substitution ──
//
// Dérive, pour un voyageur et son groupe, l'ensemble des valeurs nommées
// substituées dans le modèle de document. Tout est du texte d'affichage ;
// un champ absent devient la valeur de remplacement, sauf les budgets
// (budget par défaut) et le moyen de transport (liste de la mission).

// Jours et mois français pour les dates longues ("dimanche 29 juin 2025")
var (
	frenchWeekdays = [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	frenchMonths   = [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"}
)

// Voyelles (accents compris) déclenchant l'élision "chargée d'" devant
// l'objet de mission d'un chauffeur
var elisionVowels = map[rune]bool{
	'a': true, 'e': true, 'é': true, 'è': true, 'ê': true,
	'i': true, 'î': true, 'ï': true,
	'o': true, 'ô': true, 'ö': true,
	'u': true, 'ù': true, 'û': true, 'ü': true,
	'y': true,
}

var trailingAddressSeparator = regexp.MustCompile(`;\s*$`)

// FormatLongFrenchDate met une date ISO (2006-01-02) en toutes lettres
// françaises avec le jour de la semaine ; valeur de remplacement si la
// date manque ou ne se lit pas
func FormatLongFrenchDate(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return model.MissingData
	}
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// formatBirthDate même mise en lettres, sans le jour de la semaine
func formatBirthDate(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return model.MissingData
	}
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// BuildMissionValues dérive les valeurs partagées par toutes les pages
// d'une mission
func BuildMissionValues(req *dto.SubmitMissionRequest) model.RenderContext {
	dateDepart := FormatLongFrenchDate(req.DepartureDate)
	dateRetour := FormatLongFrenchDate(req.ReturnDate)

	datesString := "du " + dateDepart + " au " + dateRetour
	if req.DepartureDate == req.ReturnDate {
		datesString = "le " + dateDepart
	}

	return model.RenderContext{
		"reference":      orMissing(req.Reference),
		"destinations":   orMissing(strings.Join(req.Destinations, ", ")),
		"dateDepart":     dateDepart,
		"dateRetour":     dateRetour,
		"datesString":    datesString,
		"transportMeans": orMissing(strings.Join(req.TransportMeans, ", ")),
		"budgets":        orDefault(strings.Join(req.Budgets, ", "), model.DefaultBudget),
	}
}

// BuildTravelerContext dérive le contexte de substitution complet d'un
// voyageur : valeurs de mission, identité, surcharge véhicule/chauffeur du
// groupe et liste complète des participants (identique sur chaque page)
func BuildTravelerContext(
	shared model.RenderContext,
	rec model.PersonnelRecord,
	group model.MissionGroup,
	driverFullName string,
	missionObject string,
	rosterText string,
) model.RenderContext {
	rc := make(model.RenderContext, len(shared)+20)
	for k, v := range shared {
		rc[k] = v
	}

	// Surcharges du groupe : véhicule du groupe (sinon liste de la mission)
	// et nom complet du chauffeur résolu (sinon valeur de remplacement)
	if group.Vehicle != "" {
		rc["transportMeans"] = group.Vehicle
	}
	rc["driver"] = orMissing(driverFullName)

	rc["nom"] = orMissing(rec.Nom)
	rc["prenom"] = orMissing(rec.Prenoms)
	rc["fullName"] = orMissing(strings.TrimSpace(rec.FullName()))
	rc["civilite"] = orMissing(rec.Civilite)
	rc["fonction"] = orMissing(rec.Fonction)
	rc["grade"] = orMissing(rec.Grade)
	rc["indice"] = orMissing(rec.Indice)
	rc["matricule"] = orMissing(rec.Matricule)
	rc["ifu"] = orMissing(rec.IFU)
	rc["adresse"] = orMissing(trailingAddressSeparator.ReplaceAllString(rec.Adresse, ""))
	rc["phone"] = NormalizePhone(rec.Telephone)
	rc["dateNaissance"] = formatBirthDate(rec.DateNaissance)
	rc["lieuNaissance"] = orMissing(rec.LieuNaissance)
	rc["missionObject"] = MissionObjectFor(rec, group, missionObject)
	rc["charge"] = genderedCharge(rec.Civilite)
	rc["membersList"] = rosterText

	return rc
}

// MissionObjectFor retourne l'objet de mission tel qu'il apparaît sur la
// page du voyageur : préfixé de la tournure de conduite, avec élision,
// quand le voyageur est chauffeur de fonction ou chauffeur désigné du groupe
func MissionObjectFor(rec model.PersonnelRecord, group model.MissionGroup, missionObject string) string {
	isDriver := strings.EqualFold(rec.Fonction, model.DriverFunction) ||
		(group.DriverID != "" && rec.EmployeeID == group.DriverID)
	if !isDriver {
		return missionObject
	}

	intro := "conduire l'équipe chargée de "
	for _, r := range missionObject {
		if elisionVowels[unicode.ToLower(r)] {
			intro = "conduire l'équipe chargée d'"
		}
		break
	}
	return intro + missionObject
}

// NormalizePhone retire l'indicatif littéral "+229" puis tous les blancs ;
// un résultat vide devient la valeur de remplacement
func NormalizePhone(phone string) string {
	p := strings.TrimPrefix(phone, "+229")
	p = strings.Join(strings.Fields(p), "")
	return orMissing(p)
}

// genderedCharge participe passé accordé à la civilité
func genderedCharge(civilite string) string {
	if civilite == "Monsieur" {
		return "chargé"
	}
	return "chargée"
}

func orMissing(v string) string {
	if strings.TrimSpace(v) == "" {
		return model.MissingData
	}
	return v
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
