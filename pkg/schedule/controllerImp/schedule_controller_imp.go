package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"sprout/entities"
	svc "sprout/pkg/schedule/service"
)

type SchedCtrl struct{ s svc.ScheduleService }

func New(s svc.ScheduleService) *SchedCtrl { return &SchedCtrl{s} }

func status(err error) int {
	switch {
	case errors.Is(err, svc.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, svc.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *SchedCtrl) ListDue(c echo.Context) error {
	within := 7
	if v := c.QueryParam("within_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "within_days must be an integer"})
		}
		within = n
	}
	out, err := h.s.ListDue(within)
	if err != nil {
		return c.JSON(status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type completeReq struct {
	OccurredAt string `json:"occurred_at"` // RFC3339, optional
	Note       string `json:"note"`
}

func (r completeReq) at() (time.Time, bool) {
	if r.OccurredAt == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, r.OccurredAt)
	return t, err == nil
}

// Complete by (plant, type): works whether or not a task row currently exists.
func (h *SchedCtrl) CompleteForPlant(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	careType := c.Param("type")
	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	at, ok := req.at()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "occurred_at must be RFC3339"})
	}
	comp, err := h.s.RecordCareEvent(svc.ByPlantType(uint(pid), careType), at, req.Note)
	if err != nil {
		return c.JSON(status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, comp)
}

func (h *SchedCtrl) CompleteTask(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("task_id"))
	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	at, ok := req.at()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "occurred_at must be RFC3339"})
	}
	comp, err := h.s.RecordCareEvent(svc.ByID(uint(tid)), at, req.Note)
	if err != nil {
		return c.JSON(status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, comp)
}

func (h *SchedCtrl) Defer(c echo.Context) error {
	tid, _ := strconv.Atoi(c.Param("task_id"))
	var body struct {
		Days int `json:"days"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	t, err := h.s.DeferTask(uint(tid), body.Days)
	if err != nil {
		return c.JSON(status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

type undoReq struct {
	Task  entities.CareTask `json:"task"`
	Token string            `json:"token"`
}

func (h *SchedCtrl) Undo(c echo.Context) error {
	var req undoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if err := h.s.UndoCompletion(req.Task, req.Token); err != nil {
		return c.JSON(status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *SchedCtrl) Events(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListEvents(uint(pid), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(status(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
