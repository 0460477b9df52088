package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/internal/repository"
)

// ── Erreurs du module export ──

var (
	ErrMissionNotFound    = errors.New("mission introuvable")
	ErrExportMissionDates = errors.New("dates de mission inexploitables pour l'export")
)

// ExportService export d'une mission enregistrée au format iCalendar
// (un événement couvrant les journées du déplacement), à destination des
// agendas des voyageurs
type ExportService interface {
	// MissionCalendar retourne le contenu .ics et le nom de fichier suggéré
	MissionCalendar(ctx context.Context, missionID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService crée une instance d'ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

func (s *exportService) MissionCalendar(ctx context.Context, missionID string) (*bytes.Buffer, string, error) {
	row, err := s.repo.Mission.GetByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, repository.ErrMissionNotFound) {
			return nil, "", ErrMissionNotFound
		}
		s.logger.Error("lecture de la mission", zap.String("missionId", missionID), zap.Error(err))
		return nil, "", err
	}

	departure, err := time.Parse("2006-01-02", row["DepartureDate"])
	if err != nil {
		return nil, "", fmt.Errorf("%w: départ %q", ErrExportMissionDates, row["DepartureDate"])
	}
	ret, err := time.Parse("2006-01-02", row["ReturnDate"])
	if err != nil {
		return nil, "", fmt.Errorf("%w: retour %q", ErrExportMissionDates, row["ReturnDate"])
	}

	summary := "Ordre de mission"
	if ref := strings.TrimSpace(row["Reference"]); ref != "" {
		summary += " " + ref
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(missionID)
	event.SetCreatedTime(s.now())
	event.SetDtStampTime(s.now())
	event.SetAllDayStartAt(departure)
	// Fin exclusive : la journée du retour est incluse dans l'événement
	event.SetAllDayEndAt(ret.AddDate(0, 0, 1))
	event.SetSummary(summary)
	event.SetLocation(row["Destinations"])
	event.SetDescription(row["MissionObject"])

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("%s.ics", missionID)

	s.logger.Info("mission exportée en iCalendar", zap.String("missionId", missionID))
	return buf, filename, nil
}
