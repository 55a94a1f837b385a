package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/validation"
)

// stubAdministratorService is an in-memory ports.AdministratorService.
type stubAdministratorService struct {
	nextID  int
	records map[int]*domain.Administrator
}

func newStubAdministratorService() *stubAdministratorService {
	return &stubAdministratorService{records: make(map[int]*domain.Administrator)}
}

func (s *stubAdministratorService) Login(_ context.Context, email, password string) (string, *domain.Administrator, error) {
	for _, a := range s.records {
		if a.Email == email && a.Password == password {
			clone := *a
			return "stub-token", &clone, nil
		}
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAdministratorService) Create(_ context.Context, administrator *domain.Administrator) (*domain.Administrator, error) {
	s.nextID++
	stored := *administrator
	stored.ID = s.nextID
	s.records[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (s *stubAdministratorService) GetByID(_ context.Context, id int) (*domain.Administrator, error) {
	a, ok := s.records[id]
	if !ok {
		return nil, domain.ErrAdministratorNotFound
	}
	clone := *a
	return &clone, nil
}

func (s *stubAdministratorService) List(_ context.Context, _ *int) ([]*domain.Administrator, error) {
	out := make([]*domain.Administrator, 0, len(s.records))
	for _, a := range s.records {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (s *stubAdministratorService) Update(_ context.Context, administrator *domain.Administrator) error {
	if _, ok := s.records[administrator.ID]; !ok {
		return domain.ErrAdministratorNotFound
	}
	clone := *administrator
	s.records[administrator.ID] = &clone
	return nil
}

func (s *stubAdministratorService) Delete(_ context.Context, administrator *domain.Administrator) error {
	delete(s.records, administrator.ID)
	return nil
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAdministratorHandler_Login_Success(t *testing.T) {
	svc := newStubAdministratorService()
	_, _ = svc.Create(context.Background(), &domain.Administrator{
		Email:    "administrator@minimalapi.com",
		Password: "12345678",
		Profile:  domain.RoleAdministrator,
	})
	h := NewAdministratorHandler(svc)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/administrators/login", `{"email":"administrator@minimalapi.com","password":"12345678"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp signedInResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || resp.Email != "administrator@minimalapi.com" || resp.Token != "stub-token" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdministratorHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAdministratorHandler(newStubAdministratorService())

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/administrators/login", `{"email":"ghost@minimalapi.com","password":"wrong"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdministratorHandler_Create_Success(t *testing.T) {
	svc := newStubAdministratorService()
	h := NewAdministratorHandler(svc)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/administrators", `{"email":"new@minimalapi.com","password":"longenough","profile":"ADMINISTRATOR"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("create handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		ID      int    `json:"id"`
		Email   string `json:"email"`
		Profile string `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || resp.Profile != "ADMINISTRATOR" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "longenough") {
		t.Fatalf("password leaked in response body: %s", rec.Body.String())
	}
}

func TestAdministratorHandler_Create_DefaultsToEditor(t *testing.T) {
	svc := newStubAdministratorService()
	h := NewAdministratorHandler(svc)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/administrators", `{"email":"new@minimalapi.com","password":"longenough"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("create handler error: %v", err)
	}
	if svc.records[1].Profile != domain.RoleEditor {
		t.Fatalf("expected EDITOR default, got %s", svc.records[1].Profile.Label())
	}
}

func TestAdministratorHandler_Create_ValidationFailure(t *testing.T) {
	h := NewAdministratorHandler(newStubAdministratorService())

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/administrators", `{"email":"","password":"short"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 2 || ve.Messages[0] != validation.MsgEmailRequired || ve.Messages[1] != validation.MsgPasswordTooShort {
		t.Fatalf("unexpected violations: %v", ve.Messages)
	}
}

func TestAdministratorHandler_Patch_MergesFields(t *testing.T) {
	svc := newStubAdministratorService()
	_, _ = svc.Create(context.Background(), &domain.Administrator{
		Email:    "old@minimalapi.com",
		Password: "12345678",
		Profile:  domain.RoleEditor,
	})
	h := NewAdministratorHandler(svc)

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/administrators/1", `{"profile":"ADMINISTRATOR"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Patch(c); err != nil {
		t.Fatalf("patch handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	stored := svc.records[1]
	if stored.Profile != domain.RoleAdministrator {
		t.Fatalf("profile not updated: %s", stored.Profile.Label())
	}
	if stored.Email != "old@minimalapi.com" || stored.Password != "12345678" {
		t.Fatalf("untouched fields changed: %+v", stored)
	}
}

func TestAdministratorHandler_Patch_NotFound(t *testing.T) {
	h := NewAdministratorHandler(newStubAdministratorService())

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/administrators/99", `{"email":"x@minimalapi.com"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Patch(c); !errors.Is(err, domain.ErrAdministratorNotFound) {
		t.Fatalf("expected ErrAdministratorNotFound, got %v", err)
	}
}

func TestAdministratorHandler_Delete_ReturnsDeletedRecord(t *testing.T) {
	svc := newStubAdministratorService()
	_, _ = svc.Create(context.Background(), &domain.Administrator{
		Email:    "gone@minimalapi.com",
		Password: "12345678",
		Profile:  domain.RoleEditor,
	})
	h := NewAdministratorHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/administrators/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "gone@minimalapi.com") {
		t.Fatalf("expected deleted record in body, got %s", rec.Body.String())
	}
}

func TestAdministratorHandler_Delete_NotFound(t *testing.T) {
	h := NewAdministratorHandler(newStubAdministratorService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/administrators/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Delete(c); !errors.Is(err, domain.ErrAdministratorNotFound) {
		t.Fatalf("expected ErrAdministratorNotFound, got %v", err)
	}
}
