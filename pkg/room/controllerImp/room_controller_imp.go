package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/room/repository"
)

type RoomCtrl struct{ repo repository.RoomRepository }

func New(repo repository.RoomRepository) *RoomCtrl { return &RoomCtrl{repo} }

func (h *RoomCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Name string `json:"name"`
		Sort int    `json:"sort"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	rm := &entities.Room{UserID: uid, Name: body.Name, Sort: body.Sort}
	if err := h.repo.Create(rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rm)
}

func (h *RoomCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoomCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}
