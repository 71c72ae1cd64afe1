package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	"sprout/pkg/plant/repository"
)

type PlantCtrl struct{ repo repository.PlantRepository }

func New(repo repository.PlantRepository) *PlantCtrl { return &PlantCtrl{repo} }

type plantReq struct {
	Name       string   `json:"name"`
	Species    string   `json:"species"`
	RoomID     *uint    `json:"room_id"`
	PotSizeCM  *float64 `json:"pot_size_cm"`
	SoilType   string   `json:"soil_type"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	PhotoURL   string   `json:"photo_url"`
	Notes      string   `json:"notes"`
	AcquiredAt string   `json:"acquired_at"` // YYYY-MM-DD
}

func (r plantReq) apply(p *entities.Plant) {
	p.Name = r.Name
	p.Species = r.Species
	p.RoomID = r.RoomID
	p.PotSizeCM = r.PotSizeCM
	p.SoilType = r.SoilType
	p.Lat = r.Lat
	p.Lon = r.Lon
	p.PhotoURL = r.PhotoURL
	p.Notes = r.Notes
	if r.AcquiredAt != "" {
		if d, err := time.Parse("2006-01-02", r.AcquiredAt); err == nil {
			p.AcquiredAt = d
		}
	}
}

func (h *PlantCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	p := &entities.Plant{UserID: uid}
	req.apply(p)
	if p.AcquiredAt.IsZero() {
		p.AcquiredAt = time.Now()
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlantCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	req.apply(p)
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}
