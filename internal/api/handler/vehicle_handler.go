package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
	"github.com/minimalapi/vehicles-api/internal/core/validation"
)

// VehicleHandler handles HTTP requests for vehicle operations.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// List returns vehicles, optionally filtered and paginated.
//
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        pageNumber  query     int     false  "1-indexed page number (page size 10)"
// @Param        name        query     string  false  "Case-insensitive name substring filter"
// @Param        brand       query     string  false  "Case-insensitive brand substring filter"
// @Success      200         {array}   domain.Vehicle
// @Router       /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	vehicles, err := h.service.List(c.Request().Context(), ports.ListVehiclesInput{
		Page:  page,
		Name:  c.QueryParam("name"),
		Brand: c.QueryParam("brand"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vehicles)
}

// Get returns a single vehicle by ID.
//
// @Summary      Get a vehicle
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  domain.Vehicle
// @Failure      404  {object}  map[string]string
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	vehicle, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vehicle)
}

// Create registers a new vehicle.
//
// @Summary      Create a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleRequest  true  "Vehicle payload"
// @Success      201   {object}  domain.Vehicle
// @Failure      400   {object}  map[string][]string
// @Router       /vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if messages := validation.Vehicle(validation.VehiclePayload{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}); len(messages) > 0 {
		return &domain.ValidationError{Messages: messages}
	}

	created, err := h.service.Create(c.Request().Context(), &domain.Vehicle{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Patch merges the provided fields onto an existing vehicle.
//
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Vehicle ID"
// @Param        body  body      patchVehicleRequest  true  "Partial payload"
// @Success      200   {object}  domain.Vehicle
// @Failure      404   {object}  map[string]string
// @Router       /vehicles/{id} [patch]
func (h *VehicleHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patchVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	vehicle, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}

	if err := h.service.Update(c.Request().Context(), vehicle); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vehicle)
}

// Delete removes a vehicle.
//
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Param        id  path  int  true  "Vehicle ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	vehicle, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), vehicle); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
