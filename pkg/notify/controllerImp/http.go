package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	nsvc "sprout/pkg/notify/service"
)

type httpCtrl struct{ s nsvc.Service }

func New(s nsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Register(e *echo.Echo) {
	e.POST("/notify/subscriptions", h.subscribe)
	e.GET("/notify/subscriptions", h.list)
	e.DELETE("/notify/subscriptions/:id", h.unsubscribe)
	e.POST("/notify/run", h.run)
}

func (h *httpCtrl) subscribe(c echo.Context) error {
	uid := c.Get("uid").(string)
	var in entities.PushSubscription
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	in.UserID = uid
	in.FailCount = 0
	if err := h.s.Subscribe(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *httpCtrl) list(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.s.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) unsubscribe(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Unsubscribe(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *httpCtrl) run(c echo.Context) error {
	within := 0 // default: only tasks already due
	if v := c.QueryParam("within_days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			within = n
		}
	}
	rep, err := h.s.DispatchDue(within)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}
