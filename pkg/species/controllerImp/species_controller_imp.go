package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sprout/pkg/species"
)

type SpeciesCtrl struct{ c *species.Client }

func New(c *species.Client) *SpeciesCtrl { return &SpeciesCtrl{c} }

func (h *SpeciesCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}
	if !h.c.Configured() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "species lookup not configured"})
	}
	out, err := h.c.Search(q)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
