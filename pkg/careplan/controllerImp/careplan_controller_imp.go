package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sprout/pkg/careplan/service"
	"sprout/pkg/careplan/types"
	plantrepo "sprout/pkg/plant/repository"
	schedsvc "sprout/pkg/schedule/service"
)

type PlanCtrl struct {
	s      service.CarePlanService
	plants plantrepo.PlantRepository
}

func New(s service.CarePlanService, plants plantrepo.PlantRepository) *PlanCtrl {
	return &PlanCtrl{s: s, plants: plants}
}

func (h *PlanCtrl) Get(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	rules, err := h.s.Get(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rules)
}

type replaceReq struct {
	Rules []types.RuleSpec `json:"rules"`
}

func (h *PlanCtrl) Replace(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.plants.FindByID(uint(pid), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	var req replaceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	rules, tasks, err := h.s.Replace(uint(pid), req.Rules)
	if err != nil {
		if errors.Is(err, schedsvc.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"rules": rules, "tasks": tasks})
}

type suggestReq struct {
	Problems []string `json:"problems"`
}

func (h *PlanCtrl) Suggest(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, _ := strconv.Atoi(c.Param("id"))
	plant, err := h.plants.FindByID(uint(pid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	var req suggestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	sug, err := h.s.Suggest(plant, req.Problems)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sug)
}
