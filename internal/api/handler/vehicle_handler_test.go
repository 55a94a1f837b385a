package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
	"github.com/minimalapi/vehicles-api/internal/core/validation"
)

// stubVehicleService is an in-memory ports.VehicleService.
type stubVehicleService struct {
	nextID    int
	records   map[int]*domain.Vehicle
	lastInput ports.ListVehiclesInput
}

func newStubVehicleService() *stubVehicleService {
	return &stubVehicleService{records: make(map[int]*domain.Vehicle)}
}

func (s *stubVehicleService) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	s.nextID++
	stored := *vehicle
	stored.ID = s.nextID
	s.records[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (s *stubVehicleService) GetByID(_ context.Context, id int) (*domain.Vehicle, error) {
	v, ok := s.records[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	clone := *v
	return &clone, nil
}

func (s *stubVehicleService) List(_ context.Context, input ports.ListVehiclesInput) ([]*domain.Vehicle, error) {
	s.lastInput = input
	out := make([]*domain.Vehicle, 0, len(s.records))
	for _, v := range s.records {
		clone := *v
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubVehicleService) Update(_ context.Context, vehicle *domain.Vehicle) error {
	if _, ok := s.records[vehicle.ID]; !ok {
		return domain.ErrVehicleNotFound
	}
	clone := *vehicle
	s.records[vehicle.ID] = &clone
	return nil
}

func (s *stubVehicleService) Delete(_ context.Context, vehicle *domain.Vehicle) error {
	delete(s.records, vehicle.ID)
	return nil
}

func TestVehicleHandler_Create_Success(t *testing.T) {
	svc := newStubVehicleService()
	h := NewVehicleHandler(svc)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/vehicles", `{"name":"Siena","brand":"Fiat","year":1998}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("create handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.Vehicle
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || resp.Name != "Siena" || resp.Brand != "Fiat" || resp.Year != 1998 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVehicleHandler_Create_YearBoundary(t *testing.T) {
	svc := newStubVehicleService()
	h := NewVehicleHandler(svc)
	e := echo.New()

	req := jsonRequest(http.MethodPost, "/vehicles", `{"name":"Model T","brand":"Ford","year":1899}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for year 1899, got %v", err)
	}
	if len(ve.Messages) != 1 || ve.Messages[0] != validation.MsgVehicleTooOld {
		t.Fatalf("unexpected violations: %v", ve.Messages)
	}

	req = jsonRequest(http.MethodPost, "/vehicles", `{"name":"Model T","brand":"Ford","year":1900}`)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("expected year 1900 to be accepted, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestVehicleHandler_List_PassesQueryParams(t *testing.T) {
	svc := newStubVehicleService()
	h := NewVehicleHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles?pageNumber=2&name=sien&brand=fiat", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("list handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if svc.lastInput.Page == nil || *svc.lastInput.Page != 2 {
		t.Fatalf("page not forwarded: %+v", svc.lastInput)
	}
	if svc.lastInput.Name != "sien" || svc.lastInput.Brand != "fiat" {
		t.Fatalf("filters not forwarded: %+v", svc.lastInput)
	}
}

func TestVehicleHandler_List_OmittedPage(t *testing.T) {
	svc := newStubVehicleService()
	h := NewVehicleHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("list handler error: %v", err)
	}
	if svc.lastInput.Page != nil {
		t.Fatalf("expected nil page when omitted, got %d", *svc.lastInput.Page)
	}
}

func TestVehicleHandler_Patch_MergesFields(t *testing.T) {
	svc := newStubVehicleService()
	_, _ = svc.Create(context.Background(), &domain.Vehicle{Name: "Siena", Brand: "Fiat", Year: 1998})
	h := NewVehicleHandler(svc)

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/vehicles/1", `{"year":2001}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Patch(c); err != nil {
		t.Fatalf("patch handler error: %v", err)
	}

	stored := svc.records[1]
	if stored.Year != 2001 || stored.Name != "Siena" || stored.Brand != "Fiat" {
		t.Fatalf("merge incorrect: %+v", stored)
	}
}

func TestVehicleHandler_Delete_NoContent(t *testing.T) {
	svc := newStubVehicleService()
	_, _ = svc.Create(context.Background(), &domain.Vehicle{Name: "Siena", Brand: "Fiat", Year: 1998})
	h := NewVehicleHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/vehicles/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestVehicleHandler_Delete_NotFound(t *testing.T) {
	h := NewVehicleHandler(newStubVehicleService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/vehicles/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestVehicleHandler_InvalidID(t *testing.T) {
	h := NewVehicleHandler(newStubVehicleService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/vehicles/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %v", err)
	}
}
