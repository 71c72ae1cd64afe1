package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sprout/pkg/weather"
)

type WeatherCtrl struct{ c *weather.Client }

func New(c *weather.Client) *WeatherCtrl { return &WeatherCtrl{c} }

func (h *WeatherCtrl) Get(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if errLat != nil || errLon != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lat and lon required"})
	}
	f, err := h.c.Fetch(lat, lon)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}
