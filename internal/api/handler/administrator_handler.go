package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
	"github.com/minimalapi/vehicles-api/internal/core/validation"
)

// AdministratorHandler handles HTTP requests for administrator operations.
type AdministratorHandler struct {
	service ports.AdministratorService
}

func NewAdministratorHandler(service ports.AdministratorService) *AdministratorHandler {
	return &AdministratorHandler{service: service}
}

// Login authenticates an administrator and returns a signed token.
//
// @Summary      Administrator login
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  signedInResponse
// @Failure      401   {object}  map[string]string
// @Router       /administrators/login [post]
func (h *AdministratorHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, administrator, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, signedInResponse{
		ID:    administrator.ID,
		Email: administrator.Email,
		Token: token,
	})
}

// Create registers a new administrator.
//
// @Summary      Create an administrator
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdministratorRequest  true  "Administrator payload"
// @Success      201   {object}  domain.Administrator
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /administrators [post]
func (h *AdministratorHandler) Create(c echo.Context) error {
	var req createAdministratorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if messages := validation.Administrator(validation.AdministratorPayload{
		Email:    req.Email,
		Password: req.Password,
	}); len(messages) > 0 {
		return &domain.ValidationError{Messages: messages}
	}

	profile := domain.RoleEditor
	if req.Profile != "" {
		var err error
		if profile, err = domain.ParseRole(req.Profile); err != nil {
			return err
		}
	}

	created, err := h.service.Create(c.Request().Context(), &domain.Administrator{
		Email:    req.Email,
		Password: req.Password,
		Profile:  profile,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Patch merges the provided fields onto an existing administrator.
//
// @Summary      Update an administrator
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Administrator ID"
// @Param        body  body      patchAdministratorRequest  true  "Partial payload"
// @Success      200   {object}  domain.Administrator
// @Failure      404   {object}  map[string]string
// @Router       /administrators/{id} [patch]
func (h *AdministratorHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patchAdministratorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	administrator, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if req.Email != nil {
		administrator.Email = *req.Email
	}
	if req.Password != nil {
		administrator.Password = *req.Password
	}
	if req.Profile != nil {
		profile, err := domain.ParseRole(*req.Profile)
		if err != nil {
			return err
		}
		administrator.Profile = profile
	}

	if err := h.service.Update(c.Request().Context(), administrator); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, administrator)
}

// List returns administrators, optionally one fixed-size page.
//
// @Summary      List administrators
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Param        pageNumber  query     int  false  "1-indexed page number (page size 10)"
// @Success      200         {array}   domain.Administrator
// @Router       /administrators [get]
func (h *AdministratorHandler) List(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	administrators, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, administrators)
}

// Get returns a single administrator by ID.
//
// @Summary      Get an administrator
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Administrator ID"
// @Success      200  {object}  domain.Administrator
// @Failure      404  {object}  map[string]string
// @Router       /administrators/{id} [get]
func (h *AdministratorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	administrator, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, administrator)
}

// Delete removes an administrator and returns the deleted record.
//
// @Summary      Delete an administrator
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Administrator ID"
// @Success      200  {object}  domain.Administrator
// @Failure      404  {object}  map[string]string
// @Router       /administrators/{id} [delete]
func (h *AdministratorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	administrator, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), administrator); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, administrator)
}
