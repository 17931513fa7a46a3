package respond

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmdesk/pkg/validation"
)

var ErrBadID = errors.New("invalid id")

// ParseID reads the :id path parameter.
func ParseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrBadID
	}
	return uint(id), nil
}

// Error writes err as {"error": ...} with a status derived from its type.
func Error(c echo.Context, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "fields": verr.Fields})
	case errors.Is(err, ErrBadID):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// BadJSON is returned when the request body cannot be bound.
func BadJSON(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json: " + err.Error()})
}
