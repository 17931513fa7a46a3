package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/respond"
	svc "farmdesk/pkg/task/service"
)

type TaskCtrl struct{ s svc.TaskService }

func New(s svc.TaskService) *TaskCtrl { return &TaskCtrl{s} }

func (h *TaskCtrl) List(c echo.Context) error {
	out, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var t entities.Task
	if err := c.Bind(&t); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := h.s.Create(&t); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	var p svc.TaskPatch
	if err := c.Bind(&p); err != nil {
		return respond.BadJSON(c, err)
	}
	out, err := h.s.Update(id, p)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.s.Delete(id); err != nil {
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
