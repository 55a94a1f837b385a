package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// pageParam parses the optional pageNumber query parameter. Absence returns
// nil, which callers treat as "full set".
func pageParam(c echo.Context) (*int, error) {
	raw := c.QueryParam("pageNumber")
	if raw == "" {
		return nil, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid pageNumber")
	}
	return &page, nil
}
