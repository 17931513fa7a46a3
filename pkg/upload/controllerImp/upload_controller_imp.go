package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/respond"
	svc "farmdesk/pkg/upload/service"
	"farmdesk/pkg/validation"
)

type UploadCtrl struct{ p svc.Presigner }

func New(p svc.Presigner) *UploadCtrl { return &UploadCtrl{p} }

// UploadURL issues a presigned POST for one file.
func (h *UploadCtrl) UploadURL(c echo.Context) error {
	var req entities.UploadRequest
	if err := c.Bind(&req); err != nil {
		return respond.BadJSON(c, err)
	}
	if err := validation.Check(req); err != nil {
		return respond.Error(c, err)
	}
	out, err := h.p.Presign(c.Request().Context(), req)
	if errors.Is(err, svc.ErrDisabled) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
