package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	svc "farmdesk/pkg/plot/service"
	"farmdesk/pkg/respond"
)

type PlotCtrl struct{ s svc.PlotService }

func New(s svc.PlotService) *PlotCtrl { return &PlotCtrl{s} }

func (h *PlotCtrl) List(c echo.Context) error {
	out, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var v entities.Plot
	if err := c.Bind(&v); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := h.s.Create(&v); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *PlotCtrl) Update(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	var p svc.PlotPatch
	if err := c.Bind(&p); err != nil {
		return respond.BadJSON(c, err)
	}
	out, err := h.s.Update(id, p)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.s.Delete(id); err != nil {
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
