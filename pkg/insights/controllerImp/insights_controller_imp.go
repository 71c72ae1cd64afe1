package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sprout/pkg/insights/service"
)

type InsightsCtrl struct{ s service.InsightsService }

func New(s service.InsightsService) *InsightsCtrl { return &InsightsCtrl{s} }

func (h *InsightsCtrl) Get(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	ins, err := h.s.ForPlant(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ins)
}

func (h *InsightsCtrl) Export(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	b, err := h.s.ExportXLSX(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="plant-%d-history.xlsx"`, pid))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}
