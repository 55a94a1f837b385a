package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the anonymous welcome document.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

type homeResponse struct {
	Documentation  string `json:"documentation"`
	WelcomeMessage string `json:"welcomeMessage"`
}

// Home handles GET /.
//
// @Summary      API welcome document
// @Tags         home
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, homeResponse{
		Documentation:  "/swagger",
		WelcomeMessage: "Welcome to vehicles API - Minimal API",
	})
}
