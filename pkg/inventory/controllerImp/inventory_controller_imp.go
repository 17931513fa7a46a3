package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	svc "farmdesk/pkg/inventory/service"
	"farmdesk/pkg/respond"
)

type InventoryCtrl struct{ s svc.InventoryService }

func New(s svc.InventoryService) *InventoryCtrl { return &InventoryCtrl{s} }

func (h *InventoryCtrl) List(c echo.Context) error {
	out, err := h.s.List()
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryCtrl) Create(c echo.Context) error {
	var v entities.InventoryItem
	if err := c.Bind(&v); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := h.s.Create(&v); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *InventoryCtrl) Update(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	var p svc.InventoryPatch
	if err := c.Bind(&p); err != nil {
		return respond.BadJSON(c, err)
	}
	out, err := h.s.Update(id, p)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryCtrl) Delete(c echo.Context) error {
	id, err := respond.ParseID(c)
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.s.Delete(id); err != nil {
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
