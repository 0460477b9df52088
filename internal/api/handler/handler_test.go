package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tech-sunvi/gas-gomission/internal/dto"
	"github.com/tech-sunvi/gas-gomission/internal/service"
	"github.com/tech-sunvi/gas-gomission/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Doubles des services
// ═══════════════════════════════════════════════════════════

// ── Double MissionService ──

type mockMissionService struct {
	result *dto.SubmitMissionResponse
	err    error
}

func (m *mockMissionService) Submit(_ context.Context, _ *dto.SubmitMissionRequest) (*dto.SubmitMissionResponse, error) {
	return m.result, m.err
}

// ── Double ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) MissionCalendar(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── Double PersonnelService ──

type mockPersonnelService struct {
	record       map[string]string
	getErr       error
	upsertResult *dto.UpsertPersonnelResponse
}

func (m *mockPersonnelService) GetRecord(_ context.Context, _ string) (map[string]string, error) {
	return m.record, m.getErr
}

func (m *mockPersonnelService) UpsertRecord(_ context.Context, _ dto.UpsertPersonnelRequest) *dto.UpsertPersonnelResponse {
	return m.upsertResult
}

// ── Double SearchService ──

type mockSearchService struct {
	employees    []dto.EmployeeMatch
	columnValues []string
	err          error
}

func (m *mockSearchService) Employees(_ context.Context, _ string) ([]dto.EmployeeMatch, error) {
	return m.employees, m.err
}
func (m *mockSearchService) Destinations(_ context.Context, _ string) ([]string, error) {
	return m.columnValues, m.err
}
func (m *mockSearchService) TransportMeans(_ context.Context, _ string) ([]string, error) {
	return m.columnValues, m.err
}
func (m *mockSearchService) Budgets(_ context.Context, _ string) ([]string, error) {
	return m.columnValues, m.err
}
func (m *mockSearchService) SearchColumn(_ context.Context, _, _, _ string) ([]string, error) {
	return m.columnValues, m.err
}
func (m *mockSearchService) SearchColumnProjected(_ context.Context, _, _, _ string, _ []string) ([][]string, error) {
	return nil, m.err
}

// ═══════════════════════════════════════════════════════════
// Aides de test
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// MissionHandler
// ═══════════════════════════════════════════════════════════

func TestMissionHandler_Submit_Success(t *testing.T) {
	mock := &mockMissionService{
		result: &dto.SubmitMissionResponse{
			MissionID:   "ODM-1750000000000",
			DocumentURL: "http://localhost:8080/api/v1/documents/abc",
		},
	}
	h := NewMissionHandler(mock, &mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/missions", jsonBody(dto.SubmitMissionRequest{
		MissionObject: "installer les équipements",
		DepartureDate: "2025-06-29",
		ReturnDate:    "2025-07-02",
		Members:       []string{"594"},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/missions", h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("attendu 201, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("attendu code 0, obtenu %d", resp.Code)
	}
}

func TestMissionHandler_Submit_MissingRequiredFields(t *testing.T) {
	h := NewMissionHandler(&mockMissionService{}, &mockExportService{})

	w := httptest.NewRecorder()
	// Sans missionObject ni dates : le binding doit rejeter
	req := httptest.NewRequest("POST", "/missions", jsonBody(map[string]interface{}{
		"members": []string{"594"},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/missions", h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
}

func TestMissionHandler_Submit_InvalidDates(t *testing.T) {
	h := NewMissionHandler(&mockMissionService{err: service.ErrInvalidDates}, &mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/missions", jsonBody(dto.SubmitMissionRequest{
		MissionObject: "objet",
		DepartureDate: "29/06/2025",
		ReturnDate:    "2025-07-02",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/missions", h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 13001 {
		t.Errorf("attendu code 13001, obtenu %d", resp.Code)
	}
}

func TestMissionHandler_Calendar_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		filename: "ODM-1.ics",
	}
	h := NewMissionHandler(&mockMissionService{}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/missions/ODM-1/calendar", nil)

	r := gin.New()
	r.GET("/missions/:id/calendar", h.Calendar)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="ODM-1.ics"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestMissionHandler_Calendar_NotFound(t *testing.T) {
	h := NewMissionHandler(&mockMissionService{}, &mockExportService{err: service.ErrMissionNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/missions/ODM-inconnu/calendar", nil)

	r := gin.New()
	r.GET("/missions/:id/calendar", h.Calendar)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PersonnelHandler
// ═══════════════════════════════════════════════════════════

func TestPersonnelHandler_GetRecord_Success(t *testing.T) {
	mock := &mockPersonnelService{record: map[string]string{"Nom": "AHOYO"}}
	h := NewPersonnelHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/personnel/594", nil)

	r := gin.New()
	r.GET("/personnel/:id", h.GetRecord)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
}

func TestPersonnelHandler_GetRecord_NotFound(t *testing.T) {
	h := NewPersonnelHandler(&mockPersonnelService{getErr: service.ErrPersonnelNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/personnel/9999", nil)

	r := gin.New()
	r.GET("/personnel/:id", h.GetRecord)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("attendu 404, obtenu %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12001 {
		t.Errorf("attendu code 12001, obtenu %d", resp.Code)
	}
}

func TestPersonnelHandler_Upsert_AlwaysOK(t *testing.T) {
	// Même une défaillance métier produit un 200 structuré
	h := NewPersonnelHandler(&mockPersonnelService{
		upsertResult: &dto.UpsertPersonnelResponse{Success: false, Message: "date de naissance illisible"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/personnel", jsonBody(map[string]string{"Nom": "AHOYO"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/personnel", h.UpsertRecord)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SearchHandler
// ═══════════════════════════════════════════════════════════

func TestSearchHandler_Employees(t *testing.T) {
	mock := &mockSearchService{
		employees: []dto.EmployeeMatch{{EmployeeID: "594", Nom: "AHOYO", Prenoms: "Jean"}},
	}
	h := NewSearchHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/search/employees?hint=aho", nil)

	r := gin.New()
	r.GET("/search/employees", h.Employees)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
	resp := parseResponse(w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("données inattendues: %v", resp.Data)
	}
	list, ok := data["list"].([]interface{})
	if !ok || len(list) != 1 {
		t.Errorf("liste inattendue: %v", data["list"])
	}
}

func TestSearchHandler_Destinations(t *testing.T) {
	h := NewSearchHandler(&mockSearchService{columnValues: []string{"Sèmè-Podji"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/search/destinations?hint=seme", nil)

	r := gin.New()
	r.GET("/search/destinations", h.Destinations)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("attendu 200, obtenu %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ReferenceHandler
// ═══════════════════════════════════════════════════════════

type mockReferenceService struct {
	err error
}

func (m *mockReferenceService) AddDestination(_ context.Context, _ string) error { return m.err }
func (m *mockReferenceService) AddVehicle(_ context.Context, _ string) error     { return m.err }

func TestReferenceHandler_AddDestination(t *testing.T) {
	h := NewReferenceHandler(&mockReferenceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/destinations", jsonBody(dto.AddDestinationRequest{Destination: "Kandi"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/destinations", h.AddDestination)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("attendu 201, obtenu %d", w.Code)
	}
}

func TestReferenceHandler_AddDestination_MissingField(t *testing.T) {
	h := NewReferenceHandler(&mockReferenceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/destinations", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/destinations", h.AddDestination)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("attendu 400, obtenu %d", w.Code)
	}
}
