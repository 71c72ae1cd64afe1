package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	repo "sprout/pkg/observe/repository"
)

type ObserveCtrl struct{ repo repo.ObserveRepository }

func New(repo repo.ObserveRepository) *ObserveCtrl { return &ObserveCtrl{repo} }

type obsReq struct {
	Date         string   `json:"date"`
	HeightCM     *float64 `json:"height_cm"`
	SoilMoistPct *float64 `json:"soil_moist_pct"`
	MoistState   string   `json:"moist_state"`
	NewLeaves    *int     `json:"new_leaves"`
	Note         string   `json:"note"`
	PhotoURL     string   `json:"photo_url"`
}

func (h *ObserveCtrl) Create(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var req obsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	o := &entities.Observation{
		PlantID:      uint(pid),
		Date:         d,
		HeightCM:     req.HeightCM,
		SoilMoistPct: req.SoilMoistPct,
		MoistState:   req.MoistState,
		NewLeaves:    req.NewLeaves,
		Note:         req.Note,
		PhotoURL:     req.PhotoURL,
	}
	if err := h.repo.Create(o); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *ObserveCtrl) List(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	days := 60
	if v := c.QueryParam("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	out, err := h.repo.Recent(uint(pid), days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
