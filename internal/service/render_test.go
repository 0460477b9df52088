package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/model"
)

// ── Dates longues françaises ──

func TestFormatLongFrenchDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-06-29", "dimanche 29 juin 2025"},
		{"2025-12-01", "lundi 1 décembre 2025"},
		{"2024-02-29", "jeudi 29 février 2024"},
		{"", model.MissingData},
		{"29/06/2025", model.MissingData},
	}
	for _, c := range cases {
		if got := FormatLongFrenchDate(c.in); got != c.want {
			t.Errorf("FormatLongFrenchDate(%q) = %q, attendu %q", c.in, got, c.want)
		}
	}
}

func TestBuildMissionValues_DatesString(t *testing.T) {
	req := &dto.SubmitMissionRequest{
		DepartureDate: "2025-06-29",
		ReturnDate:    "2025-07-02",
	}
	values := BuildMissionValues(req)
	if got, want := values["datesString"], "du dimanche 29 juin 2025 au mercredi 2 juillet 2025"; got != want {
		t.Errorf("datesString = %q, attendu %q", got, want)
	}

	req.ReturnDate = req.DepartureDate
	values = BuildMissionValues(req)
	if got, want := values["datesString"], "le dimanche 29 juin 2025"; got != want {
		t.Errorf("datesString aller-retour même jour = %q, attendu %q", got, want)
	}
}

func TestBuildMissionValues_Defaults(t *testing.T) {
	req := &dto.SubmitMissionRequest{
		DepartureDate: "2025-06-29",
		ReturnDate:    "2025-06-30",
	}
	values := BuildMissionValues(req)

	if values["budgets"] != model.DefaultBudget {
		t.Errorf("budgets vides doivent retomber sur %q, obtenu %q", model.DefaultBudget, values["budgets"])
	}
	if values["reference"] != model.MissingData {
		t.Errorf("référence vide doit devenir %q, obtenu %q", model.MissingData, values["reference"])
	}
	if values["destinations"] != model.MissingData {
		t.Errorf("destinations vides doivent devenir %q, obtenu %q", model.MissingData, values["destinations"])
	}
}

func TestBuildMissionValues_Joins(t *testing.T) {
	req := &dto.SubmitMissionRequest{
		DepartureDate:  "2025-06-29",
		ReturnDate:     "2025-06-30",
		Destinations:   []string{"Natitingou", "Parakou"},
		TransportMeans: []string{"Véhicule administratif", "Bus"},
		Budgets:        []string{"Budget annexe"},
	}
	values := BuildMissionValues(req)

	if got, want := values["destinations"], "Natitingou, Parakou"; got != want {
		t.Errorf("destinations = %q, attendu %q", got, want)
	}
	if got, want := values["transportMeans"], "Véhicule administratif, Bus"; got != want {
		t.Errorf("transportMeans = %q, attendu %q", got, want)
	}
	if got, want := values["budgets"], "Budget annexe"; got != want {
		t.Errorf("budgets = %q, attendu %q", got, want)
	}
}

// ── Téléphone ──

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"+229 97 11 22 33", "97112233"},
		{"97 11 22 33", "97112233"},
		{"97112233", "97112233"},
		{"", model.MissingData},
		{"+229", model.MissingData},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, attendu %q", c.in, got, c.want)
		}
	}
}

// ── Objet de mission et élision ──

func TestMissionObjectFor_NonDriver(t *testing.T) {
	rec := model.PersonnelRecord{EmployeeID: "594", Fonction: "Directeur Technique"}
	group := model.MissionGroup{}

	got := MissionObjectFor(rec, group, "installer les équipements")
	if got != "installer les équipements" {
		t.Errorf("objet d'un non-chauffeur altéré: %q", got)
	}
}

func TestMissionObjectFor_DriverElision(t *testing.T) {
	driver := model.PersonnelRecord{EmployeeID: "230", Fonction: model.DriverFunction}
	group := model.MissionGroup{}

	cases := []struct {
		object, want string
	}{
		{"installer les équipements", "conduire l'équipe chargée d'installer les équipements"},
		{"évaluer le site", "conduire l'équipe chargée d'évaluer le site"},
		{"superviser les travaux", "conduire l'équipe chargée de superviser les travaux"},
	}
	for _, c := range cases {
		if got := MissionObjectFor(driver, group, c.object); got != c.want {
			t.Errorf("MissionObjectFor(chauffeur, %q) = %q, attendu %q", c.object, got, c.want)
		}
	}
}

func TestMissionObjectFor_DesignatedDriver(t *testing.T) {
	// Un voyageur désigné chauffeur du groupe reçoit la tournure de
	// conduite même si sa fonction n'est pas celle de conducteur
	rec := model.PersonnelRecord{EmployeeID: "594", Fonction: "Directeur Technique"}
	group := model.MissionGroup{DriverID: "594"}

	got := MissionObjectFor(rec, group, "superviser les travaux")
	if got != "conduire l'équipe chargée de superviser les travaux" {
		t.Errorf("chauffeur désigné sans tournure de conduite: %q", got)
	}
}

// ── Contexte de substitution d'un voyageur ──

func TestBuildTravelerContext(t *testing.T) {
	req := &dto.SubmitMissionRequest{
		Reference:      "REF-001",
		Destinations:   []string{"Natitingou"},
		DepartureDate:  "2025-06-29",
		ReturnDate:     "2025-07-02",
		TransportMeans: []string{"Bus"},
	}
	shared := BuildMissionValues(req)

	rec := model.PersonnelRecord{
		EmployeeID:    "594",
		Nom:           "AHOYO",
		Prenoms:       "Jean",
		Civilite:      "Monsieur",
		Fonction:      "Directeur Technique",
		DateNaissance: "1980-03-15",
		LieuNaissance: "Cotonou",
		Adresse:       "Quartier Fidjrossè; ",
		Telephone:     "+229 97 11 22 33",
	}
	group := model.MissionGroup{Vehicle: "Véhicule administratif", DriverID: "230"}

	rc := BuildTravelerContext(shared, rec, group, "SOSSOU Pierre", "installer les équipements", "- liste")

	want := map[string]string{
		"fullName":       "AHOYO Jean",
		"civilite":       "Monsieur",
		"fonction":       "Directeur Technique",
		"driver":         "SOSSOU Pierre",
		"transportMeans": "Véhicule administratif",
		"adresse":        "Quartier Fidjrossè",
		"phone":          "97112233",
		"dateNaissance":  "15 mars 1980",
		"charge":         "chargé",
		"missionObject":  "installer les équipements",
		"membersList":    "- liste",
		"grade":          model.MissingData,
		"matricule":      model.MissingData,
	}
	for key, expected := range want {
		if got := rc[key]; got != expected {
			t.Errorf("rc[%q] = %q, attendu %q", key, got, expected)
		}
	}
}

func TestBuildTravelerContext_FemaleCharge(t *testing.T) {
	rec := model.PersonnelRecord{Nom: "KOUDJO", Prenoms: "Afi", Civilite: "Madame"}
	rc := BuildTravelerContext(model.RenderContext{}, rec, model.MissionGroup{}, "", "objet", "")

	if rc["charge"] != "chargée" {
		t.Errorf("charge pour Madame = %q, attendu chargée", rc["charge"])
	}
}

func TestBuildTravelerContext_SharedUntouched(t *testing.T) {
	shared := model.RenderContext{"transportMeans": "Bus", "reference": "REF-001"}
	rec := model.PersonnelRecord{Nom: "AHOYO"}
	group := model.MissionGroup{Vehicle: "Véhicule administratif"}

	_ = BuildTravelerContext(shared, rec, group, "", "objet", "")

	want := model.RenderContext{"transportMeans": "Bus", "reference": "REF-001"}
	if diff := cmp.Diff(want, shared); diff != "" {
		t.Errorf("les valeurs partagées ont été modifiées (-attendu +obtenu):\n%s", diff)
	}
}
