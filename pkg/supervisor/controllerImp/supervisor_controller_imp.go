package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/respond"
	svc "farmdesk/pkg/supervisor/service"
)

type SupervisorCtrl struct{ s svc.SupervisorService }

func New(s svc.SupervisorService) *SupervisorCtrl { return &SupervisorCtrl{s} }

func (h *SupervisorCtrl) List(c echo.Context) error {
	out, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SupervisorCtrl) Create(c echo.Context) error {
	var v entities.Supervisor
	if err := c.Bind(&v); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := h.s.Create(&v); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *SupervisorCtrl) Update(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	var p svc.SupervisorPatch
	if err := c.Bind(&p); err != nil {
		return respond.BadJSON(c, err)
	}
	out, err := h.s.Update(id, p)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SupervisorCtrl) Delete(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.s.Delete(id); err != nil {
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
